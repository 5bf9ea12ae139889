package dto

import "time"

type CreateGameRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	GifURL      string `json:"gifUrl"`
}

type UpdateGameRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	GifURL      string `json:"gifUrl"`
}

type GameResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	GifURL      string    `json:"gifUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
