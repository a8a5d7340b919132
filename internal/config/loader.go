package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPath returns the default configuration file path: ~/.cronviz/config.yaml.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// DataDir returns the cronviz data directory: ~/.cronviz.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cronviz"
	}
	return filepath.Join(home, ".cronviz")
}

// Load reads the config file at path, then applies a .env file from the
// working directory and CRONVIZ_* environment variables on top.
// If path is empty, ConfigPath() is used. A missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFile reads only the file at path over DefaultConfig, without
// environment overrides or validation. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// Save writes cfg to path as YAML.
// If path is empty, ConfigPath() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
