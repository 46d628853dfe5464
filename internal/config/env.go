package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DotEnvFile is the optional file loaded into the process environment before env overrides apply
var DotEnvFile = ".env"

// loadFromEnv overrides configuration with environment variables.
// Variables already present in the environment win over the .env file.
func loadFromEnv(config *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse env vars: %w", err)
	}

	return nil
}
