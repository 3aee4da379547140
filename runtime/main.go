package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/alphabatem/common/context"
	"github.com/qazkids/qazkids_api/services"
)

// @title QazKids API
// @version 1.0
// @description Backend for the QazKids educational platform
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.JWTService{},
		&services.PostgresService{},
		&services.RedisService{},
		&services.MinIOService{},

		&services.AuthService{},
		&services.UserService{},
		&services.CatalogService{},
		&services.ProgressService{},
		&services.ContentService{},
		&services.AnalyticsService{},
		&services.MediaService{},
		&services.RateLimitService{},

		&services.MonitoringService{},
		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
