package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-breaker/internal/games/blockbreaker"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bb.log")
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = "" })

	logger, closeLog, err := newLogger(nil)
	require.NoError(t, err)
	logger.Debug("event", "kind", "shoot")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "blockbreaker")
	assert.Contains(t, string(data), "kind=shoot")
}

func TestNewLoggerFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	require.NoError(t, err)
	defer closeLog()

	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerBadPath(t *testing.T) {
	flagLogFile = filepath.Join(t.TempDir(), "missing", "bb.log")
	t.Cleanup(func() { flagLogFile = "" })

	_, _, err := newLogger(nil)
	assert.Error(t, err)
}

func TestRootRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "brutal"
	t.Cleanup(func() { flagDifficulty = "" })

	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "brutal"))
}

func TestRootAcceptsPresets(t *testing.T) {
	t.Cleanup(func() { flagDifficulty = "" })
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		flagDifficulty = name
		assert.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil), name)
	}
}

func TestRootRejectsBadConfig(t *testing.T) {
	t.Cleanup(func() {
		flagConfig = ""
		blockbreaker.SetConfigPath("")
	})
	dir := t.TempDir()

	flagConfig = filepath.Join(dir, "missing.yaml")
	assert.Error(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("ball: [unterminated"), 0o644))
	flagConfig = broken
	assert.Error(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	stalled := filepath.Join(dir, "stalled.yaml")
	require.NoError(t, os.WriteFile(stalled, []byte("ball:\n  speed: 0\n"), 0o644))
	flagConfig = stalled
	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ball.speed")

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("ball:\n  speed: 320\n"), 0o644))
	flagConfig = good
	assert.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
}
