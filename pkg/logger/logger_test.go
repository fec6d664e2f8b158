package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/pkg/logger"
)

func TestInitLevels(t *testing.T) {
	ctx := context.Background()

	t.Run("Warn level silences debug and info", func(t *testing.T) {
		logger.Init("warn")
		h := logger.Log.Handler()
		assert.False(t, h.Enabled(ctx, slog.LevelDebug))
		assert.False(t, h.Enabled(ctx, slog.LevelInfo))
		assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	})

	t.Run("Level names are case-insensitive", func(t *testing.T) {
		logger.Init("ERROR")
		assert.False(t, logger.Log.Handler().Enabled(ctx, slog.LevelWarn))
		assert.True(t, logger.Log.Handler().Enabled(ctx, slog.LevelError))
	})

	t.Run("Unknown level falls back to debug", func(t *testing.T) {
		logger.Init("chatty")
		assert.True(t, logger.Log.Handler().Enabled(ctx, slog.LevelDebug))
	})
}
