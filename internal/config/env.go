package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// parseDefaults fills target from envDefault tags only, ignoring the process environment.
func parseDefaults(target any) error {
	return env.ParseWithOptions(target, env.Options{Environment: map[string]string{}})
}

// loadDotenv reads the optional .env file. A missing file is not an error; variables
// already present in the environment win over file values.
func loadDotenv() error {
	path := os.Getenv(envDotenvPath)
	if path == "" {
		path = defaultDotenvPath
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
