package logzer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSLogHandler(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "slog.log")
	SetLogger(
		WithOutput(io.Discard),
		WithLevel(zerolog.InfoLevel),
		WithLogFile(&LogFile{FilePath: logPath}))
	defer SetLogger(WithOutput(os.Stderr))

	slogger := slog.Default().
		WithGroup("demo").
		With("resolution", "milliseconds").
		WithGroup("section")

	slogger.LogAttrs(context.TODO(), slog.LevelInfo, "__slogger__ message",
		slog.String("aaa", "bbb"), slog.Int("i", 111))
	slogger.Debug("__slogger__ debug")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `logger=["demo","section"]`)
	assert.Contains(t, string(content), `__slogger__ message`)
	assert.Contains(t, string(content), `aaa=bbb`)
	assert.Contains(t, string(content), `resolution=milliseconds`)
	assert.NotContains(t, string(content), `__slogger__ debug`)
	assert.True(t, slogger.Enabled(context.TODO(), slog.LevelWarn))
	assert.False(t, slogger.Enabled(context.TODO(), slog.LevelDebug))
}
