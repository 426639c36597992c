package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Assist AssistConfig `yaml:"assist"`
	Seed   SeedConfig   `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	// Path is the SQLite data source. The default ":memory:" keeps
	// state for the process lifetime only.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AssistConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type SeedConfig struct {
	// Enabled populates the registries with the demo projects and
	// subcontractors on startup.
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("MUQAWIL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("MUQAWIL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("MUQAWIL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MUQAWIL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("MUQAWIL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("MUQAWIL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if key := os.Getenv("MUQAWIL_ASSIST_API_KEY"); key != "" {
		cfg.Assist.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.Assist.APIKey == "" {
		cfg.Assist.APIKey = key
	}
	if model := os.Getenv("MUQAWIL_ASSIST_MODEL"); model != "" {
		cfg.Assist.Model = model
	}
	if seed := os.Getenv("MUQAWIL_SEED"); seed != "" {
		enabled, err := strconv.ParseBool(seed)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MUQAWIL_SEED: %w", err)
		}
		cfg.Seed.Enabled = enabled
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
