package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	gameSeeder := NewGameSeeder(s.db)
	if err := gameSeeder.SeedGames(); err != nil {
		log.Printf("Game seeding failed: %v", err)
		return err
	}

	userSeeder := NewUserSeeder(s.db)
	if err := userSeeder.SeedUsers(); err != nil {
		log.Printf("User seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedGamesOnly seeds only the game catalog
func (s *MainSeeder) SeedGamesOnly() error {
	gameSeeder := NewGameSeeder(s.db)
	return gameSeeder.SeedGames()
}

// SeedUsersOnly seeds only the demo users
func (s *MainSeeder) SeedUsersOnly() error {
	userSeeder := NewUserSeeder(s.db)
	return userSeeder.SeedUsers()
}

// Reset clears sessions, users and games before reseeding. Used by the
// admin reseed endpoint to restore a known state.
func (s *MainSeeder) Reset() error {
	log.Println("Clearing existing games, users and sessions")

	for _, table := range []string{"game_sessions", "users", "games"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Printf("Failed to clear table %s: %v", table, err)
			return err
		}
	}

	return s.SeedAll()
}
