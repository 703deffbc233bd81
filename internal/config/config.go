// Package config loads server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads a .env file if present and applies environment overrides
// on top of the defaults.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            "localhost:8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}

	if v := os.Getenv("XLADDUCT_ADDR"); v != "" {
		cfg.Addr = v
	}
	for _, o := range []struct {
		key string
		dst *time.Duration
	}{
		{"XLADDUCT_READ_TIMEOUT", &cfg.ReadTimeout},
		{"XLADDUCT_WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"XLADDUCT_IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"XLADDUCT_SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	} {
		v := os.Getenv(o.key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = d
	}

	return cfg, nil
}
