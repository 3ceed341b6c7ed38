package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if cfg.Server.Addr != ":8080" {
			t.Errorf("default addr = %q", cfg.Server.Addr)
		}
		if cfg.Auth.AccessExpiryMin != 15 || cfg.Auth.RefreshExpiryDay != 7 {
			t.Errorf("default token expiries = %d/%d", cfg.Auth.AccessExpiryMin, cfg.Auth.RefreshExpiryDay)
		}
		if !cfg.Seed.Enabled {
			t.Error("seeding disabled by default")
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
addr = ":9999"

[auth]
jwt_secret = "file-secret"

[limits]
rate_limit = 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.JWTSecret != "file-secret" {
		t.Errorf("jwt secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Limits.RateLimit != 10 {
		t.Errorf("rate limit = %d", cfg.Limits.RateLimit)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Database.Path != "data/onyx.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
	if cfg.Auth.AccessExpiryMin != 15 {
		t.Errorf("access expiry = %d", cfg.Auth.AccessExpiryMin)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed config accepted")
	}
}
