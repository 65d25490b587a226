package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/wordballoon.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.PromptDelay != 600*time.Millisecond || cfg.AdvanceDelay != 1500*time.Millisecond || cfg.SpinDelay != 2*time.Second {
		t.Errorf("delays = %v %v %v", cfg.PromptDelay, cfg.AdvanceDelay, cfg.SpinDelay)
	}
	if cfg.ResetPIN != "" || cfg.CatalogPath != "" {
		t.Errorf("optional fields set: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("DB_PATH", "/tmp/wb.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("RESET_PIN", "4321")
	t.Setenv("SPIN_DELAY", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" || cfg.DBPath != "/tmp/wb.db" {
		t.Errorf("addr/path = %q %q", cfg.HTTPAddr, cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.ResetPIN != "4321" {
		t.Errorf("ResetPIN = %q", cfg.ResetPIN)
	}
	if cfg.SpinDelay != 250*time.Millisecond {
		t.Errorf("SpinDelay = %v", cfg.SpinDelay)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":     "LOUD",
		"ADVANCE_DELAY": "soon",
		"PROMPT_DELAY":  "-1s",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s: expected error", key, val)
			}
		})
	}
}
