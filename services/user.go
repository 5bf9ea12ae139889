package services

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
)

type UserService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	mediaSvc *MediaService
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	return nil
}

func (svc *UserService) GetUsers() ([]dto.UserResponse, error) {
	users, err := svc.sqlSvc.Users().GetUsers()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = mapUserResponse(&users[i])
	}

	log.WithField("user_count", len(out)).Info("Retrieved users")
	return out, nil
}

func (svc *UserService) GetUser(id string) (*dto.UserResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := mapUserResponse(user)
	return &resp, nil
}

// CreateUser registers a player. The avatar, when present, is stored through
// the media service before the record is written.
func (svc *UserService) CreateUser(req dto.CreateUserRequest, avatar *multipart.FileHeader) (*dto.UserResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed").
			WithData(dto.FormatValidationErrors(err))
	}

	if existing, err := svc.sqlSvc.Users().GetUserByEmail(req.Email); err == nil && existing != nil {
		return nil, shared.NewAppError(http.StatusConflict, nil, "Email already registered")
	}

	profilePicture := req.ProfilePicture
	if avatar != nil {
		url, err := svc.mediaSvc.UploadAvatar(avatar)
		if err != nil {
			return nil, err
		}
		profilePicture = url
	}

	user := &model.User{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: profilePicture,
	}

	user, err := svc.sqlSvc.Users().CreateUser(user)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"user_id":             user.ID,
		"email":               user.Email,
		"has_profile_picture": profilePicture != "",
	}).Info("New user registered")

	resp := mapUserResponse(user)
	return &resp, nil
}

func (svc *UserService) UpdateUser(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := svc.sqlSvc.Users().UpdateUser(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithField("user_id", id).Info("User updated")

	resp := mapUserResponse(user)
	return &resp, nil
}

func (svc *UserService) DeleteUser(id string) error {
	if err := svc.sqlSvc.Users().DeleteUser(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "User not found")
		}
		return svc.sqlSvc.HandleError(err)
	}

	log.WithField("user_id", id).Info("User deleted")
	return nil
}

// UploadAvatar replaces an existing user's profile picture.
func (svc *UserService) UploadAvatar(userID string, avatar *multipart.FileHeader) (*dto.AvatarUploadResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	url, err := svc.mediaSvc.UploadAvatar(avatar)
	if err != nil {
		return nil, err
	}

	previous := user.ProfilePicture
	user.ProfilePicture = url
	if err := svc.sqlSvc.Users().UpdateUser(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if previous != "" {
		if err := svc.mediaSvc.DeleteByURL(previous); err != nil {
			log.WithError(err).Warn("Failed to delete replaced avatar")
		}
	}

	log.WithField("user_id", userID).Info("Avatar uploaded")

	return &dto.AvatarUploadResponse{ProfilePicture: url}, nil
}

func mapUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}
}
