package config_test

import (
	"testing"
	"time"

	"github.com/raysh454/sokudo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SOKUDO_API_KEY", "test-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIKey != "test-key" {
		t.Errorf("expected api key from env, got %q", cfg.APIKey)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.Strategy != "mobile" {
		t.Errorf("expected default strategy mobile, got %q", cfg.Strategy)
	}
	if cfg.UpstreamTimeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %s", cfg.UpstreamTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected default log format json, got %q", cfg.LogFormat)
	}
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	t.Setenv("SOKUDO_API_KEY", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when SOKUDO_API_KEY is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SOKUDO_API_KEY", "k")
	t.Setenv("SOKUDO_LISTEN_ADDR", ":9090")
	t.Setenv("SOKUDO_ALLOWED_ORIGINS", "https://a.test,https://b.test,https://c.test")
	t.Setenv("SOKUDO_UPSTREAM_ENDPOINT", "http://localhost:9999")
	t.Setenv("SOKUDO_STRATEGY", "desktop")
	t.Setenv("SOKUDO_UPSTREAM_TIMEOUT", "90s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.ListenAddr)
	}
	if len(cfg.AllowedOrigins) != 3 || cfg.AllowedOrigins[2] != "https://c.test" {
		t.Errorf("expected 3 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.UpstreamEndpoint != "http://localhost:9999" {
		t.Errorf("expected endpoint override, got %q", cfg.UpstreamEndpoint)
	}
	if cfg.Strategy != "desktop" {
		t.Errorf("expected strategy desktop, got %q", cfg.Strategy)
	}
	if cfg.UpstreamTimeout != 90*time.Second {
		t.Errorf("expected 90s timeout, got %s", cfg.UpstreamTimeout)
	}
}
