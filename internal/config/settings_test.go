package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsKeys = []string{
	"DEADEND_SEED", "DEADEND_LOG_LEVEL", "DEADEND_DEBUG_ADDR", "DEADEND_DEFS_DIR",
	"DEADEND_DECORATIONS", "DEADEND_AUDIO", "DEADEND_START_PAUSED",
}

// clearSettingsEnv unsets every key for the test and again afterwards,
// since godotenv writes straight into the process environment.
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, k := range settingsKeys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range settingsKeys {
			os.Unsetenv(k)
		}
	})
}

func TestLoadSettings_Defaults(t *testing.T) {
	clearSettingsEnv(t)
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_EnvFileAndOverrides(t *testing.T) {
	clearSettingsEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "DEADEND_SEED=42\nDEADEND_AUDIO=false\nDEADEND_LOG_LEVEL=ERROR\nDEADEND_DECORATIONS=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	os.Setenv("DEADEND_LOG_LEVEL", "DEBUG")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.Seed)
	assert.False(t, s.Audio)
	assert.Equal(t, 5, s.Decorations)
	assert.Equal(t, "DEBUG", s.LogLevel, "process environment wins over .env")
}

func TestLoadSettings_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DEADEND_SEED", "abc"},
		{"DEADEND_AUDIO", "maybe"},
		{"DEADEND_DECORATIONS", "-3"},
		{"DEADEND_START_PAUSED", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearSettingsEnv(t)
			os.Setenv(tt.key, tt.value)
			_, err := LoadSettings()
			assert.Error(t, err)
		})
	}
}
