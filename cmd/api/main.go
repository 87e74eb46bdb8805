// Command api runs the commerce HTTP API: token-based auth, the product
// catalog, and order aggregation on top of PostgreSQL and Redis.
//
// @title        Commerce API
// @version      1.0
// @description  Session-based access control and order aggregation service.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/shopline/commerce-api/internal/api"
	"github.com/shopline/commerce-api/internal/infrastructure/config"
	"github.com/shopline/commerce-api/internal/infrastructure/db/postgres"
	"github.com/shopline/commerce-api/internal/infrastructure/db/redis"
	"github.com/shopline/commerce-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" || cfg.JWTRefreshSecret == "" {
		log.Fatal().Msg("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, api.Secrets{
		JWTSecret:        cfg.JWTSecret,
		JWTRefreshSecret: cfg.JWTRefreshSecret,
	}, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
