package model

import "time"

type Game struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	ImageURL    string
	GifURL      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
