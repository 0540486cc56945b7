package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log, err := NewLogger(Options{File: path, Level: LevelDebug})
	require.NoError(t, err)

	log.Info("hello", "key", "value")
	require.NoError(t, log.Close())
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewLoggerCreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	log, err := NewLogger(Options{File: path, JSON: true})
	require.NoError(t, err)

	log.Warn("started")
	require.NoError(t, log.Close())
	assert.FileExists(t, path)
}

func TestNewLoggerBadFile(t *testing.T) {
	// A regular file where a directory is expected.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := NewLogger(Options{File: filepath.Join(blocker, "run.log")})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Debug("x")
	log.Error("y", "k", 1)
	assert.NoError(t, log.Close())
}
