package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// clearEnv blanks every variable Load() reads so host settings cannot leak
// into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_ENABLED",
		"BASE_PRICE", "FLOOR_PRICE",
		"API_RATE_LIMIT_RPS", "API_RATE_LIMIT_BURST", "API_STREAM_INTERVAL",
		"LOG_LEVEL", "LOG_FORMAT",
		"METRICS_ENABLED", "METRICS_PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis should be disabled by default")
	}
	if !cfg.Pricing.BasePrice.Equal(decimal.RequireFromString("6.00")) {
		t.Errorf("BasePrice = %s, want 6.00", cfg.Pricing.BasePrice)
	}
	if !cfg.Pricing.FloorPrice.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("FloorPrice = %s, want 2.50", cfg.Pricing.FloorPrice)
	}
	if cfg.API.RateLimitRPS != 50 {
		t.Errorf("RateLimitRPS = %v, want 50", cfg.API.RateLimitRPS)
	}
	if cfg.API.StreamInterval != 60*time.Second {
		t.Errorf("StreamInterval = %v, want 60s", cfg.API.StreamInterval)
	}
	if cfg.MetricsEnabled {
		t.Error("metrics should be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("BASE_PRICE", "7.25")
	t.Setenv("FLOOR_PRICE", "3.00")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("API_STREAM_INTERVAL", "30s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if !cfg.Pricing.BasePrice.Equal(decimal.RequireFromString("7.25")) {
		t.Errorf("BasePrice = %s, want 7.25", cfg.Pricing.BasePrice)
	}
	if !cfg.Pricing.FloorPrice.Equal(decimal.RequireFromString("3.00")) {
		t.Errorf("FloorPrice = %s, want 3.00", cfg.Pricing.FloorPrice)
	}
	if cfg.API.StreamInterval != 30*time.Second {
		t.Errorf("StreamInterval = %v, want 30s", cfg.API.StreamInterval)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "qa")

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown ENV")
	}
}

func TestLoad_InvalidBasePrice(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_PRICE", "six dollars")

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed BASE_PRICE")
	}
}

func TestLoad_NegativeFloorPrice(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLOOR_PRICE", "-1.00")

	if _, err := Load(); err == nil {
		t.Error("expected error for negative FLOOR_PRICE")
	}
}

func TestLoad_FloorAboveBase(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_PRICE", "6.00")
	t.Setenv("FLOOR_PRICE", "6.50")

	if _, err := Load(); err == nil {
		t.Error("expected error when floor exceeds base")
	}
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_RATE_LIMIT_RPS", "-5")

	if _, err := Load(); err == nil {
		t.Error("expected error for negative rate limit")
	}
}

func TestGetEnvAsDecimal(t *testing.T) {
	t.Setenv("TEST_DECIMAL", "")

	v, err := getEnvAsDecimal("TEST_DECIMAL", "1.25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equal(decimal.RequireFromString("1.25")) {
		t.Errorf("default = %s, want 1.25", v)
	}

	t.Setenv("TEST_DECIMAL", "0.10")
	v, err = getEnvAsDecimal("TEST_DECIMAL", "1.25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equal(decimal.RequireFromString("0.10")) {
		t.Errorf("value = %s, want 0.10", v)
	}

	t.Setenv("TEST_DECIMAL", "not-a-number")
	if _, err := getEnvAsDecimal("TEST_DECIMAL", "1.25"); err == nil {
		t.Error("expected error for malformed value")
	}
}
