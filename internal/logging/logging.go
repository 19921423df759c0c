package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"holdem-resolver/internal/config"
)

var output io.Writer = os.Stdout

// Init wires the global zerolog logger from config. When cfg.File is set,
// logs go to a size-capped file instead of stdout; the same writer backs the
// HTTP request logger via Writer().
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	output = os.Stdout
	if cfg.File != "" {
		if w, err := newCappedFileWriter(cfg.File, cfg.MaxMB); err == nil {
			output = w
		}
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Writer returns the destination Init selected, for loggers that cannot go
// through zerolog (the chi request logger speaks slog).
func Writer() io.Writer {
	return output
}
