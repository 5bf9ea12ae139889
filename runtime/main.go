package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/retroden/arcade_api/services"
)

// @title Retro Arcade API
// @version 1.0
// @description Game session tracking backend for the retro arcade frontend
// @BasePath /
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment variables")
	}

	ctx, err := context.NewCtx(
		&services.SqliteService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.MediaService{},
		&services.JWTService{},
		&services.RateLimitService{},
		&services.MonitoringService{},

		&services.UserService{},
		&services.GameService{},
		&services.SessionService{},
		&services.StatsService{},
		&services.SearchService{},
		&services.SeedService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service context terminated")
		return
	}
}
