//go:build unit

package zap

import (
	"context"
	"testing"

	logpkg "github.com/LerianStudio/lib-license/license/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return &Logger{logger: zap.New(core)}, logs
}

func TestNew_ValidConfig(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNew_DevelopmentDefaultsToDebug(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{Environment: EnvironmentDevelopment})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestNew_ExplicitLevelOverridesEnvironment(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{Environment: EnvironmentLocal, Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, level.Level())
}

func TestNew_InvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: "qa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentProduction, Level: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestLogger_LogDispatchesLevels(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger(zapcore.DebugLevel)
	ctx := context.Background()

	logger.Log(ctx, logpkg.LevelDebug, "d")
	logger.Log(ctx, logpkg.LevelInfo, "i")
	logger.Log(ctx, logpkg.LevelWarn, "w")
	logger.Log(ctx, logpkg.LevelError, "e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLogger_WithAttachesFields(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger(zapcore.InfoLevel)

	child := logger.With(logpkg.String("component", "catalog"))
	child.Log(context.Background(), logpkg.LevelInfo, "resolved")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "catalog", fields["component"])
}

func TestLogger_Enabled(t *testing.T) {
	t.Parallel()

	logger, _ := newObservedLogger(zapcore.WarnLevel)

	assert.True(t, logger.Enabled(logpkg.LevelError))
	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
}

func TestLogger_NilSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger

	// Must not panic.
	logger.Log(context.Background(), logpkg.LevelInfo, "dropped")
	assert.False(t, logger.Enabled(logpkg.LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
}

func TestLogger_SyncHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	logger, _ := newObservedLogger(zapcore.InfoLevel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, logger.Sync(ctx), context.Canceled)
}
