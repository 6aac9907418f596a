package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Game     GameConfig
	LogLevel string `validate:"oneof=debug info warn error"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Type     string `validate:"oneof=sqlite sqlite3 postgres postgresql mysql"`
	Path     string `validate:"required_if=Type sqlite,required_if=Type sqlite3"`
	Host     string
	Port     string
	Name     string
	User     string
	Password string `validate:"required_if=Type postgres,required_if=Type postgresql"`
	URL      string `validate:"required_if=Type mysql"`
}

// GameConfig holds gameplay tuning
type GameConfig struct {
	// MatchDelay is how long a selected pair stays on screen before it is validated
	MatchDelay time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	delay, err := time.ParseDuration(getEnv("MATCH_DELAY", "800ms"))
	if err != nil {
		return nil, fmt.Errorf("MATCH_DELAY: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Type:     strings.ToLower(getEnv("DB_TYPE", "sqlite")),
			Path:     getEnv("DB_PATH", "./wordmatch.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordmatch"),
			User:     getEnv("DB_USER", "wordmatch"),
			Password: os.Getenv("DB_PASSWORD"),
			URL:      os.Getenv("DB_URL"),
		},
		Game: GameConfig{
			MatchDelay: delay,
		},
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured database
func (c *Config) DSN() string {
	return c.Database.DSN()
}

// DSN returns the connection string for a networked database, or the file path for sqlite
func (d DatabaseConfig) DSN() string {
	switch d.Type {
	case "postgres", "postgresql":
		if d.URL != "" {
			return d.URL
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Name,
		)
	case "mysql":
		return d.URL
	default:
		return d.Path
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
