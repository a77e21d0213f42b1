package config

import (
	"testing"
	"time"
)

func TestLoad_WithOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9001")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("WRITE_TIMEOUT", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppPort != 9001 {
		t.Errorf("expected AppPort 9001, got %d", cfg.AppPort)
	}

	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("expected RedisURL to be set, got %s", cfg.RedisURL)
	}

	if !cfg.RateLimitEnabled {
		t.Error("expected rate limiting enabled")
	}

	if cfg.WriteTimeout != 2*time.Minute {
		t.Errorf("expected WriteTimeout 2m, got %s", cfg.WriteTimeout)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error without any env vars, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8000 {
		t.Errorf("expected default AppPort 8000, got %d", cfg.AppPort)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}

	if cfg.WriteTimeout != 0 {
		t.Errorf("expected no default WriteTimeout, got %s", cfg.WriteTimeout)
	}

	if cfg.TraceExporter != TraceExporterNone {
		t.Errorf("expected default TraceExporter 'none', got %s", cfg.TraceExporter)
	}

	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("expected default Addr '0.0.0.0:8000', got %s", cfg.Addr())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "APP_PORT", "70000"},
		{"unparseable port", "APP_PORT", "eighty"},
		{"bad exporter", "TRACE_EXPORTER", "zipkin"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s, got nil", tt.key, tt.val)
			}
		})
	}
}

func TestConfig_ValidateRateLimit(t *testing.T) {
	cfg := &Config{TraceExporter: TraceExporterNone, LogFormat: "json", RateLimitEnabled: true, RateLimitRPS: 0, RateLimitBurst: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero RPS with rate limiting enabled")
	}

	cfg.RateLimitEnabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected disabled limiter to skip checks, got %v", err)
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example.com, ,https://*.example.org "}
	got := cfg.GetCORSAllowedOrigins()

	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://*.example.org" {
		t.Errorf("unexpected origins: %v", got)
	}

	cfg.CORSAllowedOrigins = ""
	if cfg.GetCORSAllowedOrigins() != nil {
		t.Error("expected nil origins for empty setting")
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{AppEnv: "production"}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to return true")
	}

	cfg.AppEnv = "development"
	if cfg.IsProduction() {
		t.Error("expected IsProduction to return false")
	}
}
