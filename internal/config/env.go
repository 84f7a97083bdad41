package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// win over .env entries (godotenv does not override existing variables).
//
// Recognized variables:
//
//	LEARNHUB_DATA_DIR      - data directory
//	LEARNHUB_ADMIN_SECRET  - shared admin secret
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LEARNHUB_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("LEARNHUB_ADMIN_SECRET"); v != "" {
		cfg.AdminSecret = v
	}
}
