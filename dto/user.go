package dto

import "time"

type CreateUserRequest struct {
	Email          string `json:"email" form:"email" validate:"required,email"`
	FirstName      string `json:"firstName" form:"firstName" validate:"required,min=1"`
	LastName       string `json:"lastName" form:"lastName" validate:"required,min=1"`
	ProfilePicture string `json:"profilePicture" form:"profilePicture" validate:"omitempty"`
}

type UpdateUserRequest struct {
	Email          string `json:"email" validate:"omitempty,email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AvatarUploadResponse struct {
	ProfilePicture string `json:"profilePicture"`
}
