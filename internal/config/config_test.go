package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NAVSTACK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	Load()

	assert.True(t, GetBool("default_nav_bar", false))
	assert.True(t, GetBool("animation_enabled", false))
	assert.Equal(t, 60, GetInt("animation_fps", 0))
	assert.False(t, GetBool("log_enabled", true))
	assert.Equal(t, "info", Get("log_level", ""))
	assert.Equal(t, 10, GetInt("log_max_files", 0))
}

func TestLoadFromTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "default_nav_bar = false\nanimation_fps = 30\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("NAVSTACK_CONFIG_PATH", path)

	Load()

	assert.False(t, GetBool("default_nav_bar", true))
	assert.Equal(t, 30, GetInt("animation_fps", 0))
	assert.Equal(t, "debug", Get("log_level", ""))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("animation_fps = 30\n"), 0644))
	t.Setenv("NAVSTACK_CONFIG_PATH", path)
	t.Setenv("NAVSTACK_ANIMATION_FPS", "120")

	Load()

	assert.Equal(t, 120, GetInt("animation_fps", 0))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("NAVSTACK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("NAVSTACK_ANIMATION_FPS", "-5")
	t.Setenv("NAVSTACK_LOG_LEVEL", "verbose")
	t.Setenv("NAVSTACK_DEFAULT_NAV_BAR", "maybe")

	Load()

	assert.Equal(t, 60, GetInt("animation_fps", 0))
	assert.Equal(t, "info", Get("log_level", ""))
	assert.True(t, GetBool("default_nav_bar", false))
}

func TestBoolNormalization(t *testing.T) {
	t.Setenv("NAVSTACK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))

	cases := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"no", false},
		{"off", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Setenv("NAVSTACK_LOG_ENABLED", tc.raw)
			Load()
			assert.Equal(t, tc.want, GetBool("log_enabled", !tc.want))
		})
	}
}

func TestGetMissingKeyReturnsDefault(t *testing.T) {
	t.Setenv("NAVSTACK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	Load()

	assert.Equal(t, "fallback", Get("nonexistent", "fallback"))
	assert.Equal(t, 7, GetInt("nonexistent", 7))
	assert.True(t, GetBool("nonexistent", true))
}
