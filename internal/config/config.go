package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Fred struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"fred"`
	Cache struct {
		QuoteTTLSeconds int `yaml:"quote_ttl_seconds"`
		RateTTLSeconds  int `yaml:"rate_ttl_seconds"`
		NameTTLSeconds  int `yaml:"name_ttl_seconds"`
	} `yaml:"cache"`
	Display struct {
		Decimals int `yaml:"decimals"`
	} `yaml:"display"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything except the
// FRED key, which gates only the central-bank table.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.Fred.APIKey = v
	}
	if v := os.Getenv("MARKETBOARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3009
	}
	if cfg.Cache.QuoteTTLSeconds == 0 {
		cfg.Cache.QuoteTTLSeconds = 600
	}
	if cfg.Cache.RateTTLSeconds == 0 {
		cfg.Cache.RateTTLSeconds = 3600
	}
	if cfg.Cache.NameTTLSeconds == 0 {
		cfg.Cache.NameTTLSeconds = 86400
	}
	if cfg.Display.Decimals == 0 {
		cfg.Display.Decimals = 2
	}

	return cfg, nil
}

func (c *Config) QuoteTTL() time.Duration {
	return time.Duration(c.Cache.QuoteTTLSeconds) * time.Second
}

func (c *Config) RateTTL() time.Duration {
	return time.Duration(c.Cache.RateTTLSeconds) * time.Second
}

func (c *Config) NameTTL() time.Duration {
	return time.Duration(c.Cache.NameTTLSeconds) * time.Second
}
