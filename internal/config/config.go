package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Port the API server listens on
	Port int `yaml:"port"`

	// AllowedOrigin is the single cross-origin caller the API accepts
	AllowedOrigin string `yaml:"allowed_origin"`

	// DBPath is the location of the sqlite database file
	DBPath string `yaml:"db_path"`

	// ToastSeconds is the grace period before an optimistic action is
	// committed to the server
	ToastSeconds int `yaml:"toast_seconds"`

	// APIBaseURL is the server the terminal client talks to
	APIBaseURL string `yaml:"api_base_url"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Port:          3001,
		AllowedOrigin: "http://localhost:3000",
		DBPath:        defaultDBPath(),
		ToastSeconds:  5,
		APIBaseURL:    "http://localhost:3001/api",
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todos.db"
	}
	return filepath.Join(home, ".todos", "todos.db")
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todos", "config.yaml"), nil
}

// Load loads config from ~/.todos/config.yaml, falling back to defaults when
// the file does not exist. Environment variables override both.
func Load() (*Config, error) {
	config := Default()

	path, err := configPath()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnvOverrides(config)

	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", config.Port)
	}
	if config.ToastSeconds <= 0 {
		return nil, fmt.Errorf("invalid toast_seconds: %d", config.ToastSeconds)
	}

	return config, nil
}

// applyEnvOverrides applies TODOS_* environment variables on top of the
// loaded configuration
func applyEnvOverrides(config *Config) {
	if val := os.Getenv("TODOS_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			config.Port = port
		}
	}
	if val := os.Getenv("TODOS_ALLOWED_ORIGIN"); val != "" {
		config.AllowedOrigin = val
	}
	if val := os.Getenv("TODOS_DB_PATH"); val != "" {
		config.DBPath = val
	}
	if val := os.Getenv("TODOS_TOAST_SECONDS"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil {
			config.ToastSeconds = secs
		}
	}
	if val := os.Getenv("TODOS_API_URL"); val != "" {
		config.APIBaseURL = val
	}
}

// ToastDuration returns the toast grace period as a time.Duration
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

// Addr returns the listen address for the API server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
