// Package logging builds the zerolog loggers used by the commands and the
// HTTP server.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/transcripts/internal/config"
)

const FormatJSON = "json"

// New returns a logger writing to out (stdout when nil). Console output is
// human-readable with timestamps; an invalid level falls back to info with a
// warning.
func New(cfg config.Logging, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	var writer io.Writer = out
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		} else {
			logger.Warn().Str("invalid_level", cfg.Level).Msg("Invalid log level, using default 'info'")
		}
	}

	return logger.Level(level)
}

// GormLevel maps the SQL_LOG_LEVEL setting to gorm's logger level. Unknown
// values mean warn.
func GormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
