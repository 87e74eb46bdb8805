package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Access and refresh tokens are signed with distinct secrets.
	JWTSecret        string `env:"JWT_SECRET"`
	JWTRefreshSecret string `env:"JWT_REFRESH_SECRET"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL             string        `env:"DATABASE_URL,          default=postgres://localhost:5432/commerce?sslmode=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,     default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,     default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,  default=30m"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
