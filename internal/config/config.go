// Package config reads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

type Config struct {
	LogLevel    string `env:"PAISA_LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"PAISA_LOG_ENCODING" envDefault:"console"`
	LogFile     string `env:"PAISA_LOG_FILE" envDefault:"paisa-quest.log"`

	// Seed drives hints and company events. Zero picks a seed at startup.
	Seed       int64  `env:"PAISA_SEED"`
	CatalogDir string `env:"PAISA_CATALOG_DIR"`
	Game       string `env:"PAISA_GAME"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load applies envFile, when it exists, and then parses the environment.
// Variables already set in the process win over the file.
func Load(envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return cfg, fmt.Errorf("load %s: %w", envFile, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("stat %s: %w", envFile, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
