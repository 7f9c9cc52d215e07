package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SourceClickHouse = "clickhouse"
	SourceMySQL      = "mysql"
)

type Config struct {
	Source SourceConfig `yaml:"source"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig describes how to reach the server. Type selects the wire
// protocol: the native ClickHouse protocol or its MySQL-compatible port.
type SourceConfig struct {
	Type        string        `yaml:"type"`
	Host        string        `yaml:"host"`
	Username    string        `yaml:"username"`
	Password    string        `yaml:"password"`
	DialTimeout time.Duration `yaml:"dialTimeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Type:        SourceClickHouse,
			Username:    "default",
			DialTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// LoadConfig reads and validates the file at path.
func LoadConfig(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the file at path over Default without validating it, so
// callers can apply overrides first.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Source.Type {
	case SourceClickHouse, SourceMySQL:
	default:
		return fmt.Errorf("source.type must be %s or %s, got %q", SourceClickHouse, SourceMySQL, c.Source.Type)
	}
	if c.Source.Host == "" {
		return errors.New("source.host is required")
	}
	if c.Source.DialTimeout < 0 {
		return errors.New("source.dialTimeout must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
