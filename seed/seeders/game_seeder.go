package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retroden/arcade_api/model"
)

// GameSeeder handles seeding the retro game catalog
type GameSeeder struct {
	db *gorm.DB
}

// NewGameSeeder creates a new game seeder
func NewGameSeeder(db *gorm.DB) *GameSeeder {
	return &GameSeeder{db: db}
}

// SeedGames seeds the database with the fixed retro game catalog
func (s *GameSeeder) SeedGames() error {
	games := s.getCatalogGames()

	for _, game := range games {
		var existing model.Game
		if err := s.db.Where("name = ?", game.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&game).Error; err != nil {
					log.Printf("Error creating game %s: %v", game.Name, err)
					return err
				}
				log.Printf("Created game: %s", game.Name)
			} else {
				log.Printf("Error checking game %s: %v", game.Name, err)
				return err
			}
		} else {
			log.Printf("Game %s already exists, skipping", game.Name)
		}
	}

	log.Println("Game seeding completed successfully")
	return nil
}

// getCatalogGames returns the four-game retro catalog
func (s *GameSeeder) getCatalogGames() []model.Game {
	now := time.Now()

	return []model.Game{
		{
			ID:          uuid.Must(uuid.NewV7()).String(),
			Name:        "Pac-man",
			Description: "Classic arcade game",
			GifURL:      "/pacman_gameicon.gif",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV7()).String(),
			Name:        "Tetris",
			Description: "Puzzle block game",
			GifURL:      "/tetris_gameicon.gif",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV7()).String(),
			Name:        "Space Invaders",
			Description: "Retro space shooter",
			GifURL:      "/space_gameicon.gif",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV7()).String(),
			Name:        "Asteroids",
			Description: "Classic space game",
			GifURL:      "/asteroids_gameicon.gif",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
