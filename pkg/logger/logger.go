package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init sets up the global JSON logger. Unknown level names fall back to
// debug so a misconfigured deployment logs more, not less.
func Init(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	Log = slog.New(handler)
}
