package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_ConsoleFormat(t *testing.T) {
	log, err := New(Config{
		Level:      "debug",
		Format:     "console",
		OutputPath: "stdout",
	})

	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONFormat(t *testing.T) {
	log, err := New(Config{
		Level:      "warn",
		Format:     "json",
		OutputPath: "stderr",
	})

	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{
		Level:      "loud",
		Format:     "console",
		OutputPath: "stdout",
	})

	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Config{
		Level:      "info",
		Format:     "json",
		OutputPath: path,
	})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()

	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
