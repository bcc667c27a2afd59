// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInvalidDefinition is returned by Validate for unusable stat tables.
var ErrInvalidDefinition = errors.New("defs: invalid definition")

const (
	TowersFile  = "towers.json"
	EnemiesFile = "enemies.json"
	WavesFile   = "waves.json"
)

// Library bundles the static stat tables consumed by the game. It is read-only at runtime.
type Library struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[EnemyKind]EnemyDefinition
	Waves   []WaveDefinition
}

// DefaultLibrary returns the built-in tower, enemy and wave tables.
func DefaultLibrary() *Library {
	return &Library{
		Towers:  defaultTowers(),
		Enemies: defaultEnemies(),
		Waves:   defaultWaves(),
	}
}

// LoadLibrary starts from the defaults and overrides each table found in dir.
// Missing files keep the built-in table; a file that is present but malformed is an error.
func LoadLibrary(dir string) (*Library, error) {
	lib := DefaultLibrary()

	var towerDefs []TowerDefinition
	found, err := readJSON(filepath.Join(dir, TowersFile), &towerDefs)
	if err != nil {
		return nil, fmt.Errorf("failed to load tower definitions: %w", err)
	}
	if found {
		lib.Towers = make(map[TowerKind]TowerDefinition, len(towerDefs))
		for _, def := range towerDefs {
			lib.Towers[def.ID] = def
		}
	}

	var enemyDefs []EnemyDefinition
	found, err = readJSON(filepath.Join(dir, EnemiesFile), &enemyDefs)
	if err != nil {
		return nil, fmt.Errorf("failed to load enemy definitions: %w", err)
	}
	if found {
		lib.Enemies = make(map[EnemyKind]EnemyDefinition, len(enemyDefs))
		for _, def := range enemyDefs {
			lib.Enemies[def.ID] = def
		}
	}

	var waves []WaveDefinition
	found, err = readJSON(filepath.Join(dir, WavesFile), &waves)
	if err != nil {
		return nil, fmt.Errorf("failed to load wave definitions: %w", err)
	}
	if found {
		lib.Waves = waves
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func readJSON(path string, v interface{}) (bool, error) {
	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return true, nil
}

// Validate checks that every kind has a definition and that all numbers are usable.
func (l *Library) Validate() error {
	for _, kind := range TowerKinds {
		def, ok := l.Towers[kind]
		if !ok {
			return fmt.Errorf("%w: tower %q missing", ErrInvalidDefinition, kind)
		}
		if def.Cost < 0 || def.Damage < 0 || def.Range < 0 || def.HP < 0 {
			return fmt.Errorf("%w: tower %q has negative stats", ErrInvalidDefinition, kind)
		}
		if kind.FireMode() != FireNone && def.FireInterval <= 0 {
			return fmt.Errorf("%w: tower %q needs a positive fire interval", ErrInvalidDefinition, kind)
		}
	}
	for _, kind := range EnemyKinds {
		def, ok := l.Enemies[kind]
		if !ok {
			return fmt.Errorf("%w: enemy %q missing", ErrInvalidDefinition, kind)
		}
		if def.Health <= 0 || def.Speed <= 0 || def.Reward < 0 {
			return fmt.Errorf("%w: enemy %q has invalid stats", ErrInvalidDefinition, kind)
		}
	}
	if len(l.Waves) == 0 {
		return fmt.Errorf("%w: no waves defined", ErrInvalidDefinition)
	}
	for i, w := range l.Waves {
		if w.Walkers < 0 || w.Runners < 0 || w.SpawnInterval < 0 {
			return fmt.Errorf("%w: wave %d has negative values", ErrInvalidDefinition, i+1)
		}
	}
	return nil
}

// Tower returns the definition for kind.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := l.Towers[kind]
	return def, ok
}

// Enemy returns the definition for kind.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := l.Enemies[kind]
	return def, ok
}
