// Package config loads server configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the process needs at startup.
type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Port      string `yaml:"port" env:"PORT" env-default:"8080"`
	StaticDir string `yaml:"static-dir" env:"STATIC_DIR" env-default:"static"`

	// FrontendOrigin restricts WebSocket upgrades to one Origin header
	// value; empty allows any origin.
	FrontendOrigin string `yaml:"frontend-origin" env:"FRONTEND_ORIGIN"`

	// APIKeys is a comma-separated list; empty disables authentication.
	APIKeys string `yaml:"api-keys" env:"API_KEYS"`
}

// Load reads the config file when present, falling back to the
// environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
			}
			return cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment config: %w", err)
	}

	return cfg, nil
}
