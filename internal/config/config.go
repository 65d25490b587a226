package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath      string     `env:"DB_PATH" envDefault:"data/wordballoon.db"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir      string     `env:"SPA_DIR" envDefault:"../web/dist"`
	CatalogPath string     `env:"CATALOG_PATH"`
	// ResetPIN, when set, must accompany a profile reset.
	ResetPIN string `env:"RESET_PIN"`

	PromptDelay  time.Duration `env:"PROMPT_DELAY" envDefault:"600ms"`
	AdvanceDelay time.Duration `env:"ADVANCE_DELAY" envDefault:"1500ms"`
	SpinDelay    time.Duration `env:"SPIN_DELAY" envDefault:"2s"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	for name, d := range map[string]time.Duration{
		"PROMPT_DELAY":  cfg.PromptDelay,
		"ADVANCE_DELAY": cfg.AdvanceDelay,
		"SPIN_DELAY":    cfg.SpinDelay,
	} {
		if d < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	return &cfg, nil
}
