// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// MaxUploadBytes caps the size of an uploaded workbook.
	MaxUploadBytes int64
}

const defaultMaxUploadBytes = 16 << 20

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           envOr("CAPSCAN_ADDR", ":8080"),
		MaxUploadBytes: defaultMaxUploadBytes,
	}

	if v := os.Getenv("CAPSCAN_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid CAPSCAN_MAX_UPLOAD_BYTES %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
