package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultDBPath = "~/.local/share/ingrain/ingrain.db"

// Config holds the settings read from the optional config file.
type Config struct {
	DBPath           string `yaml:"db_path"`
	DefaultAlgorithm string `yaml:"default_algorithm"`
}

// Load reads the config file, if present. Precedence is env over file
// over defaults; a missing file is not an error.
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:           DefaultDBPath,
		DefaultAlgorithm: "cognitive",
	}

	path := configPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.DefaultAlgorithm == "" {
		cfg.DefaultAlgorithm = "cognitive"
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if env := os.Getenv("INGRAIN_DB"); env != "" {
		cfg.DBPath = env
	}
}

// configPath returns the config file location, honoring
// INGRAIN_CONFIG and XDG_CONFIG_HOME.
func configPath() string {
	if env := os.Getenv("INGRAIN_CONFIG"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ingrain", "config.yaml")
}

// DBPath returns the database path from config and environment.
func DBPath() string {
	cfg, err := Load()
	if err != nil {
		return DefaultDBPath
	}
	return cfg.DBPath
}
