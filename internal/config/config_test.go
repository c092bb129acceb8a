package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PERSONS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Fatalf("expected %s, got %s", DefaultAddr, cfg.Server.Addr)
	}
	if cfg.Server.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected read header timeout %s", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.Server.ShutdownTimeout)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Events.Enabled {
		t.Fatal("expected events enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PERSONS_ADDR", "0.0.0.0:9000")
	t.Setenv("PERSONS_IDLE_TIMEOUT", "30s")
	t.Setenv("PERSONS_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("PERSONS_EVENTS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	if cfg.Server.IdleTimeout != 30*time.Second {
		t.Fatalf("unexpected idle timeout %s", cfg.Server.IdleTimeout)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Events.Enabled {
		t.Fatal("expected events disabled")
	}
}

func TestLoadPortOverride(t *testing.T) {
	cases := map[string]string{
		"8080":           ":8080",
		":8081":          ":8081",
		"127.0.0.1:8082": "127.0.0.1:8082",
	}
	for port, want := range cases {
		t.Setenv("PORT", port)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("PORT=%q: Load err: %v", port, err)
		}
		if cfg.Server.Addr != want {
			t.Fatalf("PORT=%q: expected %s, got %s", port, want, cfg.Server.Addr)
		}
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}

	t.Setenv("PORT", "")
	t.Setenv("PERSONS_SHUTDOWN_TIMEOUT", "soon")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}
