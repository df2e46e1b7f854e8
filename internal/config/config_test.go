package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ROSTER_SOURCE_URL", "ROSTER_OUTPUT_DIR", "ROSTER_OUTPUT_FILE",
		"ROSTER_HTTP_TIMEOUT_SEC", "ROSTER_SCHEDULE",
		"DB_URL", "RABBITMQ_URL", "PUSHGATEWAY_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SourceURL != DefaultSourceURL {
		t.Errorf("expected default source url, got %s", cfg.SourceURL)
	}
	if cfg.HTTPTimeout != DefaultHTTPTimeout {
		t.Errorf("expected %v, got %v", DefaultHTTPTimeout, cfg.HTTPTimeout)
	}
	if cfg.OutputPath() != filepath.Join(".", "step1.csv") {
		t.Errorf("unexpected output path: %s", cfg.OutputPath())
	}
	if cfg.DatabaseURL != "" || cfg.RabbitMQURL != "" || cfg.PushgatewayURL != "" {
		t.Error("integrations should be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ROSTER_SOURCE_URL", "http://localhost/roles")
	t.Setenv("ROSTER_OUTPUT_DIR", "/tmp/out")
	t.Setenv("ROSTER_OUTPUT_FILE", "members.csv")
	t.Setenv("ROSTER_HTTP_TIMEOUT_SEC", "5")
	t.Setenv("ROSTER_SCHEDULE", "*/5 * * * *")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SourceURL != "http://localhost/roles" {
		t.Errorf("unexpected source url: %s", cfg.SourceURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.HTTPTimeout)
	}
	if cfg.OutputPath() != filepath.Join("/tmp/out", "members.csv") {
		t.Errorf("unexpected output path: %s", cfg.OutputPath())
	}
	if cfg.Schedule != "*/5 * * * *" {
		t.Errorf("unexpected schedule: %s", cfg.Schedule)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	tests := []string{"abc", "0", "-3"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			t.Setenv("ROSTER_HTTP_TIMEOUT_SEC", v)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %q", v)
			}
		})
	}
}
