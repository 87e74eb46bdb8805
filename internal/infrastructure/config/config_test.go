package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(nil),
	}); err != nil {
		t.Fatalf("process: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Postgres.MaxOpenConns != 25 || cfg.Postgres.MaxIdleConns != 5 {
		t.Fatalf("unexpected pool defaults: %+v", cfg.Postgres)
	}
	if cfg.Postgres.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected lifetime default: %v", cfg.Postgres.ConnMaxLifetime)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected redis default: %+v", cfg.Redis)
	}
	// Secrets have no default on purpose.
	if cfg.JWTSecret != "" || cfg.JWTRefreshSecret != "" {
		t.Fatalf("secrets must not default: %+v", cfg)
	}
}

func TestOverrides(t *testing.T) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target: &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{
			"PORT":               "9090",
			"ENV":                "production",
			"JWT_SECRET":         "s1",
			"JWT_REFRESH_SECRET": "s2",
			"DATABASE_URL":       "postgres://db:5432/commerce",
			"REDIS_DB":           "3",
		}),
	}); err != nil {
		t.Fatalf("process: %v", err)
	}

	if cfg.Port != "9090" || cfg.Env != "production" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.JWTSecret != "s1" || cfg.JWTRefreshSecret != "s2" {
		t.Fatalf("secrets not picked up: %+v", cfg)
	}
	if cfg.Postgres.URL != "postgres://db:5432/commerce" || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected infra overrides: %+v", cfg)
	}
}
