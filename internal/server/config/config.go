// Package config handles configuration for the server,
// including defaults, environment variables, JSON overlay, and
// command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the bookmarks server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required; never logged.
//   - AccessTokenValidityDuration: access token lifetime.
type Config struct {
	Address                     string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
}

var (
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	ErrMissingSecretKey   = errors.New("JWT secret key is required")
)

// LoadDefaults populates Config with development defaults. The database DSN
// and the signing secret have no default: both must be supplied.
func (c *Config) LoadDefaults() {
	c.Address = ":3333"
	c.AccessTokenValidityDuration = 15 * time.Minute
}

// Validate reports the first missing required setting. The DSN and the
// signing secret are startup-time requirements, not runtime errors.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return ErrMissingDatabaseDSN
	}
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
