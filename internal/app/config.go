package app

import (
	"errors"
	"fmt"
)

// Config holds everything an App needs to run scenario files.
type Config struct {
	ScenarioPath string // .hcl file or directory
	Only         string // run only the search with this name; empty runs all

	Precheck      bool
	MaxExpansions int

	LogFormat string // "text" (default) or "json"
	LogLevel  string // "debug", "info" (default), "warn" or "error"
}

// NewConfig validates cfg, fills in logging defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxExpansions < 0 {
		return nil, fmt.Errorf("max-expansions must be >= 0, got %d", cfg.MaxExpansions)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !logFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}
