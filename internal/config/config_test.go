package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.Port != "8000" {
		t.Errorf("default port: got %q want %q", cfg.App.Port, "8000")
	}
	if cfg.Auth.AccessTokenTTLMinutes != 30 {
		t.Errorf("default token TTL minutes: got %d want 30", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("default bcrypt cost: got %d want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Seed.File != "seed_data.json" {
		t.Errorf("default seed file: got %q", cfg.Seed.File)
	}
	if !cfg.Postgres.RunMigrations {
		t.Error("migrations should default to enabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("JWT_SECRET_KEY", "override-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("SEED_ON_STARTUP", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.Port != "9000" {
		t.Errorf("port override: got %q", cfg.App.Port)
	}
	if cfg.Auth.JWTSecret != "override-secret" {
		t.Errorf("secret override: got %q", cfg.Auth.JWTSecret)
	}
	if got := cfg.Auth.AccessTokenTTL(); got != 5*time.Minute {
		t.Errorf("TTL override: got %v", got)
	}
	if cfg.Seed.Enabled {
		t.Error("seed should be disabled by override")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 30 {
		t.Errorf("expected fallback TTL 30, got %d", cfg.Auth.AccessTokenTTLMinutes)
	}
}

func TestAccessTokenTTL_ZeroUsesDefault(t *testing.T) {
	t.Parallel()

	a := AuthConfig{AccessTokenTTLMinutes: 0}
	if got := a.AccessTokenTTL(); got != 30*time.Minute {
		t.Errorf("zero TTL: got %v want 30m", got)
	}
}
