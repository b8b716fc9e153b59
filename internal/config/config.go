// internal/config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"

	"expenselog/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort   string `env:"SERVER_PORT" envDefault:"3030"`
	SecureCookie bool   `env:"SECURE_COOKIE" envDefault:"false"`
	Mongo        db.Config
}

// LoadConfig loads configuration from environment variables.
// A local .env file is honored when present.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it.")
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
