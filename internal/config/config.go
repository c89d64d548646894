// Package config reads runtime settings from the environment and an optional
// .env file, and builds the process logger from them.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-script/internal/rasterio"
)

// Environment variable names.
const (
	EnvLogLevel    = "IMAGE_SCRIPT_LOG_LEVEL"
	EnvLogFormat   = "IMAGE_SCRIPT_LOG_FORMAT"
	EnvJPEGQuality = "IMAGE_SCRIPT_JPEG_QUALITY"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the process settings.
type Config struct {
	LogLevel    logrus.Level
	LogFormat   string
	JPEGQuality int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:    logrus.WarnLevel,
		LogFormat:   FormatText,
		JPEGQuality: rasterio.DefaultJPEGQuality,
	}
}

// Load reads ./.env if it exists, then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv. Empty
// values keep their defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))); v != "" {
		if v != FormatText && v != FormatJSON {
			return Config{}, fmt.Errorf("invalid %s: %q (want %s or %s)", EnvLogFormat, v, FormatText, FormatJSON)
		}
		cfg.LogFormat = v
	}

	if v := strings.TrimSpace(getenv(EnvJPEGQuality)); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return Config{}, fmt.Errorf("invalid %s: %q (want 1-100)", EnvJPEGQuality, v)
		}
		cfg.JPEGQuality = q
	}

	return cfg, nil
}

// NewLogger creates a logger writing to w with the configured level and
// formatter.
func NewLogger(cfg Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.LogLevel)

	if cfg.LogFormat == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger
}
