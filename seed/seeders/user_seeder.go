package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retroden/arcade_api/model"
)

// UserSeeder handles seeding demo users
type UserSeeder struct {
	db *gorm.DB
}

// NewUserSeeder creates a new user seeder
func NewUserSeeder(db *gorm.DB) *UserSeeder {
	return &UserSeeder{db: db}
}

// SeedUsers seeds the database with the demo player accounts
func (s *UserSeeder) SeedUsers() error {
	users := s.getDemoUsers()

	for _, user := range users {
		var existing model.User
		if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&user).Error; err != nil {
					log.Printf("Error creating user %s: %v", user.Email, err)
					return err
				}
				log.Printf("Created user: %s %s", user.FirstName, user.LastName)
			} else {
				log.Printf("Error checking user %s: %v", user.Email, err)
				return err
			}
		} else {
			log.Printf("User %s already exists, skipping", user.Email)
		}
	}

	log.Println("User seeding completed successfully")
	return nil
}

// getDemoUsers returns the demo player accounts
func (s *UserSeeder) getDemoUsers() []model.User {
	now := time.Now()

	return []model.User{
		{
			ID:             uuid.Must(uuid.NewV7()).String(),
			Email:          "anders@retrogaming.se",
			FirstName:      "Anders",
			LastName:       "Svensson",
			ProfilePicture: "/avatars/sabineWren.jpg",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.Must(uuid.NewV7()).String(),
			Email:          "ingrid@retrogaming.se",
			FirstName:      "Ingrid",
			LastName:       "Norström",
			ProfilePicture: "/avatars/mazKanata.jpg",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.Must(uuid.NewV7()).String(),
			Email:          "lars@retrogaming.se",
			FirstName:      "Lars",
			LastName:       "Bergström",
			ProfilePicture: "/avatars/galenErso.jpg",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.Must(uuid.NewV7()).String(),
			Email:          "maja@retrogaming.se",
			FirstName:      "Maja",
			LastName:       "Lundgren",
			ProfilePicture: "/avatars/antBeru.jpg",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}
