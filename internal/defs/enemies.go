// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind is the closed set of enemy types.
type EnemyKind string

const (
	EnemyWalker EnemyKind = "walker"
	EnemyRunner EnemyKind = "runner"
)

var EnemyKinds = []EnemyKind{EnemyWalker, EnemyRunner}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      EnemyKind `json:"id"`
	Name    string    `json:"name"`
	Health  int       `json:"health"`
	Speed   float64   `json:"speed"` // tiles per second
	Reward  int       `json:"reward"`
	Visuals Visuals   `json:"visuals"`
}

func defaultEnemies() map[EnemyKind]EnemyDefinition {
	return map[EnemyKind]EnemyDefinition{
		EnemyWalker: {
			ID:      EnemyWalker,
			Name:    "Walker",
			Health:  30,
			Speed:   1.5,
			Reward:  5,
			Visuals: Visuals{Color: color.RGBA{150, 50, 50, 255}, RadiusFactor: 0.31},
		},
		EnemyRunner: {
			ID:      EnemyRunner,
			Name:    "Runner",
			Health:  15,
			Speed:   3.0,
			Reward:  8,
			Visuals: Visuals{Color: color.RGBA{200, 80, 60, 255}, RadiusFactor: 0.25},
		},
	}
}
