package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names read by parseEnv.
const (
	envAddress     = "ADDRESS"
	envDatabaseDSN = "DATABASE_DSN"
	envSecretKey   = "JWT_SECRET"
	envTokenTTL    = "ACCESS_TOKEN_TTL"
)

// parseEnv overlays configuration from the process environment. A .env file
// in the working directory is loaded first if present; a missing file is not
// an error. Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envAddress); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envTokenTTL); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
