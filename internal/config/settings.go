package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds runtime options read from the environment (optionally via .env files).
type Settings struct {
	Seed        int64
	LogLevel    string
	DebugAddr   string // пусто — отладочный сервер выключен
	DefsDir     string // пусто — встроенные таблицы
	Decorations int
	Audio       bool
	StartPaused bool
}

// DefaultSettings returns the settings used when no variable is set.
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		LogLevel:    "INFO",
		DebugAddr:   "",
		DefsDir:     "",
		Decorations: DecorationCount,
		Audio:       true,
		StartPaused: false,
	}
}

// LoadSettings loads the given .env files (missing ones are ignored) and then reads
// DEADEND_* variables. Variables already present in the environment take precedence.
func LoadSettings(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	s.LogLevel = getEnv("DEADEND_LOG_LEVEL", s.LogLevel)
	s.DebugAddr = getEnv("DEADEND_DEBUG_ADDR", s.DebugAddr)
	s.DefsDir = getEnv("DEADEND_DEFS_DIR", s.DefsDir)

	var err error
	if s.Seed, err = parseInt64("DEADEND_SEED", s.Seed); err != nil {
		return Settings{}, err
	}
	decorations, err := parseInt64("DEADEND_DECORATIONS", int64(s.Decorations))
	if err != nil {
		return Settings{}, err
	}
	if decorations < 0 {
		return Settings{}, fmt.Errorf("DEADEND_DECORATIONS must be non-negative, got %d", decorations)
	}
	s.Decorations = int(decorations)
	if s.Audio, err = parseBool("DEADEND_AUDIO", s.Audio); err != nil {
		return Settings{}, err
	}
	if s.StartPaused, err = parseBool("DEADEND_START_PAUSED", s.StartPaused); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

func parseBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return b, nil
}
