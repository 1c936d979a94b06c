package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitWritesToFile(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	path := filepath.Join(t.TempDir(), "pong.log")

	require.NoError(t, Init(Config{File: path, MaxSizeMB: 1}, zapcore.InfoLevel))
	L().Infow("goal", "player", 1)
	L().Debugw("hidden")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "goal")
	assert.Contains(t, string(data), "player")
	assert.NotContains(t, string(data), "hidden")
}

func TestInitRejectsEmptyPath(t *testing.T) {
	assert.Error(t, Init(Config{}, zapcore.InfoLevel))
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	core, logs := observer.New(zapcore.DebugLevel)

	Set(zap.New(core).Sugar())
	L().Debugw("match transition", "to", "Resetting")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "match transition", logs.All()[0].Message)

	Set(nil)
	assert.NotPanics(t, func() { L().Infow("dropped") })
}

func TestInitHonoursRotationSettings(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	path := filepath.Join(t.TempDir(), "rotate.log")
	c := Config{File: path, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}

	require.NoError(t, Init(c, zapcore.DebugLevel))
	L().Debugw("rotation", "backups", c.MaxBackups)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotation")
}
