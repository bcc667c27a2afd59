package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	require.NoError(t, lib.Validate())

	rifle, ok := lib.Tower(TowerRifleman)
	require.True(t, ok)
	assert.Equal(t, 50, rifle.Cost)
	assert.Equal(t, 10, rifle.Damage)
	assert.Equal(t, 4.0, rifle.Range)
	assert.Equal(t, 0.5, rifle.FireInterval)

	barricade, _ := lib.Tower(TowerBarricade)
	assert.Equal(t, 200, barricade.HP)
	assert.Equal(t, FireNone, TowerBarricade.FireMode())
	assert.Equal(t, FireInstant, TowerSniper.FireMode())
	assert.Equal(t, FireProjectile, TowerRifleman.FireMode())

	runner, _ := lib.Enemy(EnemyRunner)
	assert.Equal(t, 15, runner.Health)
	assert.Equal(t, 8, runner.Reward)

	require.Len(t, lib.Waves, 5)
	assert.Equal(t, 35, lib.Waves[4].Total())
	assert.Equal(t, 500*time.Millisecond, lib.Waves[4].SpawnInterval)
}

func TestWaveDefinition_Queue(t *testing.T) {
	w := WaveDefinition{Walkers: 2, Runners: 1}
	assert.Equal(t, []EnemyKind{EnemyWalker, EnemyWalker, EnemyRunner}, w.Queue())
	assert.Empty(t, WaveDefinition{}.Queue())
}

func TestLoadLibrary_MissingDirKeepsDefaults(t *testing.T) {
	lib, err := LoadLibrary(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultLibrary(), lib)
}

func TestLoadLibrary_OverridesWaves(t *testing.T) {
	dir := t.TempDir()
	data := `[{"walkers": 1, "runners": 2, "delay_ms": 250}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, WavesFile), []byte(data), 0o600))

	lib, err := LoadLibrary(dir)
	require.NoError(t, err)
	require.Len(t, lib.Waves, 1)
	assert.Equal(t, WaveDefinition{Walkers: 1, Runners: 2, SpawnInterval: 250 * time.Millisecond}, lib.Waves[0])
	assert.Len(t, lib.Towers, 3)
}

func TestLoadLibrary_Errors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, TowersFile), []byte("{"), 0o600))
		_, err := LoadLibrary(dir)
		assert.Error(t, err)
	})
	t.Run("missing tower kind", func(t *testing.T) {
		dir := t.TempDir()
		data := `[{"id": "rifleman", "cost": 50, "damage": 10, "range": 4, "fire_interval": 0.5}]`
		require.NoError(t, os.WriteFile(filepath.Join(dir, TowersFile), []byte(data), 0o600))
		_, err := LoadLibrary(dir)
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})
	t.Run("empty waves", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, WavesFile), []byte("[]"), 0o600))
		_, err := LoadLibrary(dir)
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})
}
