package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledReturnsNop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	// Must be safe to call and produce nothing.
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	assert.NoError(t, logger.Shutdown())
	assert.Empty(t, Path(logger))
}

func TestInitWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := Init(Config{Enabled: true, Level: "debug", Dir: dir, MaxFiles: 5})
	require.NoError(t, err)

	logger.Info("navigation event", "id", "home", "depth", 1)
	require.NoError(t, logger.Shutdown())

	path := Path(logger)
	require.NotEmpty(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "navigation event")
	assert.Contains(t, string(data), "home")
}

func TestWithAddsFields(t *testing.T) {
	dir := t.TempDir()
	logger, err := Init(Config{Enabled: true, Level: "info", Dir: dir})
	require.NoError(t, err)
	defer logger.Shutdown()

	child := logger.With("component", "controller")
	child.Info("pushed")

	data, err := os.ReadFile(Path(logger))
	require.NoError(t, err)
	assert.Contains(t, string(data), "controller")
}

func TestLevelFiltersDebug(t *testing.T) {
	dir := t.TempDir()
	logger, err := Init(Config{Enabled: true, Level: "warn", Dir: dir})
	require.NoError(t, err)
	defer logger.Shutdown()

	logger.Debug("hidden")
	logger.Warn("visible")

	data, err := os.ReadFile(Path(logger))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestRotateRemovesOldest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 4; i++ {
		name := filepath.Join(dir, "navstack_old"+string(rune('a'+i))+".log")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0600))
		old := time.Now().Add(-time.Duration(4-i) * time.Hour)
		require.NoError(t, os.Chtimes(name, old, old))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRotateIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(foreign, []byte("x"), 0600))

	require.NoError(t, rotate(dir, 0))

	_, err := os.Stat(foreign)
	assert.NoError(t, err)
}
