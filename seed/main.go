package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/seed/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, games, users")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		reset    = flag.Bool("reset", false, "Clear existing data before seeding")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "arcade.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	if err := db.AutoMigrate(&model.User{}, &model.Game{}, &model.GameSession{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	if *reset {
		log.Println("Resetting database before seeding...")
		if err := mainSeeder.Reset(); err != nil {
			log.Fatalf("Failed to reset and seed database: %v", err)
		}
		log.Println("Seeding operation completed successfully!")
		return
	}

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "games":
		log.Println("Seeding game catalog only...")
		if err := mainSeeder.SeedGamesOnly(); err != nil {
			log.Fatalf("Failed to seed games: %v", err)
		}
	case "users":
		log.Println("Seeding demo users only...")
		if err := mainSeeder.SeedUsersOnly(); err != nil {
			log.Fatalf("Failed to seed users: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'games', or 'users'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Retro Arcade API

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, games, users
  -db string
        Database path (overrides DB_DATABASE environment variable)
  -reset
        Clear existing games, users and sessions before seeding
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only the game catalog
  go run seed/main.go -type=games

  # Seed with custom database path
  go run seed/main.go -db=./custom.db

  # Wipe and reseed
  go run seed/main.go -reset

Environment Variables:
  DB_DATABASE - Default database path (default: arcade.db)`)
}
