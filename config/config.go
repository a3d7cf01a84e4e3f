// config.go - Handles configuration for the project

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration values, read from the environment.
type Config struct {
	DBPath        string // Path to the SQLite database file
	Port          string // HTTP listen port
	SeedData      bool   // Insert the bootstrap fixture on first start
	AdminEmail    string // Email for the seeded admin account
	AdminPassword string // Initial password for the seeded admin account
}

// Load reads config from a .env file (if present) and environment
// variables, falling back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:        getEnv("DB_PATH", "ecommerce.db"),
		Port:          getEnv("PORT", "8080"),
		SeedData:      getEnvBool("SEED_DATA", true),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@dashboard.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
