package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary List users
// @Description Get all registered users
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.UserResponse}
// @Router /api/v1/users [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userSvc.GetUsers()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", users)
}

// @Summary Get user
// @Description Get a single user by id
// @Tags user
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userSvc.GetUser(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", user)
}

// @Summary Create user
// @Description Register a new user. Accepts JSON or multipart form with an optional avatar file.
// @Tags user
// @Accept json
// @Accept mpfd
// @Produce json
// @Param createRequest body dto.CreateUserRequest true "User details"
// @Success 201 {object} shared.Response{data=dto.UserResponse}
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	var avatar *multipart.FileHeader
	if file, err := c.FormFile("avatar"); err == nil {
		avatar = file
	}

	user, err := h.userSvc.CreateUser(req, avatar)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", user)
}

// @Summary Update user
// @Description Update user details. Empty fields are left unchanged.
// @Tags user
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateRequest body dto.UpdateUserRequest true "User details"
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	user, err := h.userSvc.UpdateUser(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", user)
}

// @Summary Delete user
// @Description Remove a user. Their sessions are left in place.
// @Tags user
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userSvc.DeleteUser(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Upload avatar
// @Description Replace an existing user's profile picture
// @Tags user
// @Accept mpfd
// @Produce json
// @Param userId formData string true "User ID"
// @Param avatar formData file true "Avatar image"
// @Success 201 {object} shared.Response{data=dto.AvatarUploadResponse}
// @Router /api/v1/users/upload-avatar [post]
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	userID := c.FormValue("userId")
	if userID == "" {
		return shared.NewBadRequestError(nil, "userId is required")
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return shared.NewBadRequestError(err, "Avatar file is required")
	}

	resp, err := h.userSvc.UploadAvatar(userID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", resp)
}
