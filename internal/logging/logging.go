// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger writing to w. Format "json" emits one JSON object
// per line; anything else uses the human-readable console writer. An
// unknown level falls back to info.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Setup installs a stderr logger as the global zerolog logger. Stdout is
// reserved for the MCP protocol.
func Setup(level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = New(os.Stderr, level, format)
}
