// Package config loads server settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Config holds the server settings. Drawing colors and measurements are
// not configurable here; they come from overlay.DefaultStyle.
type Config struct {
	// Logging
	LogLevel  string // zerolog level name
	LogFormat string // "console" or "json"

	// Output
	OutputDir   string // base directory for relative output paths; "" keeps them as given
	JPEGQuality int    // 1-100, used when saving .jpg output
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "console",
		OutputDir:   "",
		JPEGQuality: 90,
	}
}

// Load reads an optional .env file, then the environment. Unset variables
// keep their Default values.
//
// Recognised variables:
//
//	OVERLAY_MCP_LOG_LEVEL     debug|info|warn|error (default info)
//	OVERLAY_MCP_LOG_FORMAT    console|json (default console)
//	OVERLAY_MCP_OUTPUT_DIR    base directory for relative output paths
//	OVERLAY_MCP_JPEG_QUALITY  JPEG quality for saved frames (default 90)
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using environment variables and defaults")
	}

	defaults := Default()
	return &Config{
		LogLevel:    strings.ToLower(getEnv("OVERLAY_MCP_LOG_LEVEL", defaults.LogLevel)),
		LogFormat:   strings.ToLower(getEnv("OVERLAY_MCP_LOG_FORMAT", defaults.LogFormat)),
		OutputDir:   getEnv("OVERLAY_MCP_OUTPUT_DIR", defaults.OutputDir),
		JPEGQuality: getEnvInt("OVERLAY_MCP_JPEG_QUALITY", defaults.JPEGQuality),
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf("invalid log format %q (want console or json)", c.LogFormat)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("invalid JPEG quality %d (want 1-100)", c.JPEGQuality)
	}
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err != nil {
			return errors.Wrap(err, "output directory")
		}
		if !info.IsDir() {
			return errors.Errorf("output directory %s is not a directory", c.OutputDir)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-integer setting")
		return defaultValue
	}
	return n
}
