package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("token ttl = %v", cfg.TokenTTL)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("rate limit = %d", cfg.RateLimitPerMinute)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("token ttl = %v", cfg.TokenTTL)
	}
	if cfg.RunMigrations {
		t.Fatal("expected migrations disabled")
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Fatalf("max body bytes = %d", cfg.MaxBodyBytes)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")

	cfg := Load()
	if cfg.TokenTTL != 12*time.Hour || cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected fallbacks, got %v / %d", cfg.TokenTTL, cfg.RateLimitPerMinute)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}

	cfg := Config{DatabaseURL: "postgres://localhost/folha", Environment: "production"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without JWT secret in production")
	}

	cfg.JWTSecret = "strong-secret"
	cfg.RunSeed = true
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when seeding without a password in production")
	}

	cfg.SeedAdminPassword = "admin-pass"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
