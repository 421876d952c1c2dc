package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"":       zapcore.InfoLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.log")
	logger, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)
	defer zap.ReplaceGlobals(zap.NewNop())

	zap.S().Named("sand").Infow("reset", "seed", 7)
	zap.S().Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "sand")
	assert.Contains(t, out, `"seed": 7`)
	assert.NotContains(t, out, "hidden")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "trace"})
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
