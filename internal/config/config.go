// Package config reads the CLI's diagnostic settings from the
// environment. None of these influence what gets fetched or printed;
// they only control crash tracebacks and log verbosity.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the recognized environment variables.
type Config struct {
	// Backtrace enables full runtime tracebacks on crashes.
	Backtrace bool `env:"STJUDE_BACKTRACE"`

	// LogLevel filters diagnostic logging (debug, info, warn, error).
	LogLevel string `env:"STJUDE_LOG" envDefault:"error"`
}

// New loads a .env file when one is present and parses the environment.
func New() (Config, error) {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
