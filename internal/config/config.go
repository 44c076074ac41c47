// Package config loads process configuration from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server holds the HTTP server settings.
type Server struct {
	Port string
}

// Gemini holds the generation service settings. APIKey is required; a
// missing key is a fatal startup condition.
type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Logging holds the logger settings.
type Logging struct {
	Level  string
	Format string
}

// Config is the full process configuration.
type Config struct {
	Server  Server
	Gemini  Gemini
	Logging Logging
}

// Load reads configuration from environment variables, falling back to
// defaults. It fails when GEMINI_API_KEY is absent.
func Load() (*Config, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Gemini: Gemini{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout: time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Logging: Logging{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
