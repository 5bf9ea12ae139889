package model

import "time"

type User struct {
	ID             string `gorm:"primaryKey"`
	Email          string `gorm:"unique;not null"`
	FirstName      string `gorm:"not null"`
	LastName       string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
