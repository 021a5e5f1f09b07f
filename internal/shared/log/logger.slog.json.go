package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/passhash-api/internal/shared/config"
)

// NewLevel returns a level variable seeded from logging.level.
func NewLevel(cfg config.ConfigProvider) *slog.LevelVar {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.GetString("logging.level")))
	return level
}

func NewJSONLogger(cfg config.ConfigProvider, level *slog.LevelVar) *slog.Logger {
	return newJSONLogger(os.Stdout, cfg.GetString("app.name"), level)
}

func newJSONLogger(w io.Writer, service string, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	})

	logger := slog.New(handler)
	if service != "" {
		logger = logger.With("service", service)
	}
	return logger
}

// FollowLevel keeps level in sync with logging.level across config reloads.
func FollowLevel(cfg config.ConfigProvider, level *slog.LevelVar, logger *slog.Logger) {
	cfg.OnChange(func() {
		next := ParseLevel(cfg.GetString("logging.level"))
		if next == level.Level() {
			return
		}
		level.Set(next)
		logger.Info("log level changed", "level", next.String())
	})
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
