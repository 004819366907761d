package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kurs-wjo/wjo_api/middleware"
	"github.com/kurs-wjo/wjo_api/services"
)

// @title WJO Certification Trainer API
// @version 1.0
// @description Gamified quiz engine for forklift operator certification training.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	var ctx *context.Context
	if services.DbEngine() == services.EnginePostgres {
		ctx, err = context.NewCtx(
			&services.PostgresService{},
			&services.RedisService{},
			&services.JWTService{},
			&middleware.AuthMiddleware{},
			&middleware.AdminMiddleware{},

			&services.MinIOService{},
			&services.MediaService{},
			&services.MonitoringService{},

			&services.ContentService{},
			&services.ProfileService{},
			&services.DeviceService{},
			&services.GameService{},

			&services.HttpService{},
		)
	} else {
		ctx, err = context.NewCtx(
			&services.SqliteService{},
			&services.RedisService{},
			&services.JWTService{},
			&middleware.AuthMiddleware{},
			&middleware.AdminMiddleware{},

			&services.MinIOService{},
			&services.MediaService{},
			&services.MonitoringService{},

			&services.ContentService{},
			&services.ProfileService{},
			&services.DeviceService{},
			&services.GameService{},

			&services.HttpService{},
		)
	}
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
