package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"

	"github.com/dmagro/eth-rpc-builder/internal/config"
)

// NewLogger returns a slog.Logger writing to stderr through zerolog.
func NewLogger(cfg config.Log) *slog.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(w io.Writer, cfg config.Log) *slog.Logger {
	var zerologLogger zerolog.Logger
	if cfg.Format == config.LogJSON {
		zerologLogger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr})
	}
	return slog.New(slogzerolog.Option{Level: Level(cfg.Level), Logger: &zerologLogger}.NewZerologHandler())
}

// Level maps a config level name to a slog.Level. Unknown names map to warn.
func Level(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
