package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultMinSeqLength = 10

type Config struct {
	HomeDir      string
	DataDir      string
	MinSeqLength int
	LogLevel     slog.Level
	LogFormat    string
}

// Load reads the environment, after loading a .env file from the working
// directory if one exists. Variables already set win over the .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	home := getEnv("MIWS_HOME", ".")
	cfg := &Config{
		HomeDir:   home,
		DataDir:   getEnv("MIWS_DATA_DIR", filepath.Join(home, "data")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	minSeq, err := strconv.Atoi(getEnv("MIWS_MIN_SEQ_LENGTH", strconv.Itoa(DefaultMinSeqLength)))
	if err != nil {
		return nil, fmt.Errorf("MIWS_MIN_SEQ_LENGTH must be a valid integer: %w", err)
	}
	if minSeq < 0 {
		return nil, fmt.Errorf("MIWS_MIN_SEQ_LENGTH must not be negative")
	}
	cfg.MinSeqLength = minSeq

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// NewLogger builds the slog logger described by the config.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
	}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
