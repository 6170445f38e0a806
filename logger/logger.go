// Package logger builds the slog logger used across a scan. Level names are
// padded to equal width and optionally colored.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
)

// New returns a text logger writing to w at the given level
func New(w io.Writer, level string, color bool) *slog.Logger {
	au := aurora.NewAurora(color)
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) != 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, FormatLevel(au, l))
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// FormatLevel renders l as a five character name
func FormatLevel(au aurora.Aurora, l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return au.White("DEBUG").String()
	case l < slog.LevelWarn:
		return au.Cyan("INFO ").String()
	case l < slog.LevelError:
		return au.Yellow("WARN ").String()
	default:
		return au.Red("ERROR").String()
	}
}
