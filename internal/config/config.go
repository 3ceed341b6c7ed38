package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Limits   LimitsConfig   `toml:"limits"`
	Seed     SeedConfig     `toml:"seed"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type AuthConfig struct {
	JWTSecret        string `toml:"jwt_secret"`
	RefreshSecret    string `toml:"refresh_secret"`
	AccessExpiryMin  int    `toml:"access_expiry_min"`
	RefreshExpiryDay int    `toml:"refresh_expiry_days"`
}

type LimitsConfig struct {
	// MaxImportBytes caps the sync import document, which carries a user's
	// entire state and can legitimately be much larger than a CRUD body.
	MaxBodyBytes   int64 `toml:"max_body_bytes"`
	MaxImportBytes int64 `toml:"max_import_bytes"`
	RateLimit      int   `toml:"rate_limit"`
	RateWindowSec  int   `toml:"rate_window_sec"`
}

type SeedConfig struct {
	Enabled bool `toml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Database: DatabaseConfig{
			Path: "data/onyx.db",
		},
		Auth: AuthConfig{
			JWTSecret:        "change-me-in-production",
			RefreshSecret:    "change-me-too-in-production",
			AccessExpiryMin:  15,
			RefreshExpiryDay: 7,
		},
		Limits: LimitsConfig{
			MaxBodyBytes:   200 * 1024,
			MaxImportBytes: 10 * 1024 * 1024,
			RateLimit:      300,
			RateWindowSec:  60,
		},
		Seed: SeedConfig{
			Enabled: true,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
