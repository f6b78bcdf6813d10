// Package config reads process settings from the environment, after loading
// a .env file when one is present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPAddr    = ":8080"
	DefaultProductCode = "marlin-7"
)

type Config struct {
	HTTPAddr    string
	Premium     bool
	DatabaseURL string
	ProductCode string
}

// Load reads the configuration. Files are optional: a missing .env is not an
// error since production sets real environment variables.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", DefaultHTTPAddr),
		Premium:     true,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ProductCode: getenv("PRODUCT_CODE", DefaultProductCode),
	}
	if v := os.Getenv("PREMIUM"); v != "" {
		premium, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("PREMIUM: %w", err)
		}
		cfg.Premium = premium
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
