package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("port=%q, want 5000", cfg.Port)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Errorf("driver=%q, want memory", cfg.Store.Driver)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl=%s", cfg.Auth.TokenTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("allowed origins=%v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Auth.UsesDefaultSigningKey() {
		t.Errorf("expected the placeholder signing key by default, got %q", cfg.Auth.SigningKey)
	}
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
port: "9090"
auth:
  signing_key: s3cr3t
  token_ttl: 2h
store:
  driver: sqlite
  sqlite:
    path: /tmp/w.db
http:
  write_timeout: 3s
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Auth.SigningKey != "s3cr3t" || cfg.Auth.TokenTTL != 2*time.Hour {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Auth.UsesDefaultSigningKey() {
		t.Errorf("configured key reported as default")
	}
	if cfg.Store.Driver != DriverSQLite || cfg.Store.SQLite.Path != "/tmp/w.db" {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.HTTP.WriteTimeout != 3*time.Second || cfg.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("unexpected http config: %+v", cfg.HTTP)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "store:\n  driver: sqlite\n")
	t.Setenv("WARDROBE_STORE_DRIVER", "redis")
	t.Setenv("WARDROBE_STORE_REDIS_ADDR", "cache:6380")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Driver != DriverRedis || cfg.Store.Redis.Addr != "cache:6380" {
		t.Fatalf("env not applied: %+v", cfg.Store)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown driver", "store:\n  driver: mongo\n"},
		{"empty signing key", "auth:\n  signing_key: \"\"\n"},
		{"non-positive ttl", "auth:\n  token_ttl: 0s\n"},
		{"malformed yaml", "port: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
