// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerKind is the closed set of tower types.
type TowerKind string

const (
	TowerRifleman  TowerKind = "rifleman"
	TowerSniper    TowerKind = "sniper"
	TowerBarricade TowerKind = "barricade"
)

// TowerKinds lists every tower kind in build-menu order.
var TowerKinds = []TowerKind{TowerRifleman, TowerSniper, TowerBarricade}

// FireMode describes what happens when a tower fires.
type FireMode int

const (
	FireNone       FireMode = iota // не стреляет
	FireProjectile                 // самонаводящийся снаряд
	FireInstant                    // мгновенный урон
)

// FireMode returns the firing behaviour of the kind.
func (k TowerKind) FireMode() FireMode {
	switch k {
	case TowerRifleman:
		return FireProjectile
	case TowerSniper:
		return FireInstant
	default:
		return FireNone
	}
}

// Valid reports whether k is one of the known kinds.
func (k TowerKind) Valid() bool {
	switch k {
	case TowerRifleman, TowerSniper, TowerBarricade:
		return true
	}
	return false
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           TowerKind `json:"id"`
	Name         string    `json:"name"`
	Cost         int       `json:"cost"`
	Damage       int       `json:"damage"`
	Range        float64   `json:"range"`         // in tiles
	FireInterval float64   `json:"fire_interval"` // seconds between shots
	HP           int       `json:"hp"`
	Description  string    `json:"description"`
	Visuals      Visuals   `json:"visuals"`
}

// Visuals contains parameters for rendering a tower or an enemy.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}

func defaultTowers() map[TowerKind]TowerDefinition {
	return map[TowerKind]TowerDefinition{
		TowerRifleman: {
			ID:           TowerRifleman,
			Name:         "Rifleman",
			Cost:         50,
			Damage:       10,
			Range:        4,
			FireInterval: 0.5,
			HP:           100,
			Description:  "Basic single-target damage",
			Visuals:      Visuals{Color: color.RGBA{100, 150, 100, 255}, RadiusFactor: 0.375, StrokeWidth: 2},
		},
		TowerSniper: {
			ID:           TowerSniper,
			Name:         "Sniper",
			Cost:         100,
			Damage:       40,
			Range:        8,
			FireInterval: 1.5,
			HP:           100,
			Description:  "High damage, long range, slow",
			Visuals:      Visuals{Color: color.RGBA{80, 80, 120, 255}, RadiusFactor: 0.375, StrokeWidth: 2},
		},
		TowerBarricade: {
			ID:          TowerBarricade,
			Name:        "Barricade",
			Cost:        25,
			HP:          200,
			Description: "Blocks path, no attack",
			Visuals:     Visuals{Color: color.RGBA{120, 100, 80, 255}, RadiusFactor: 0.45, StrokeWidth: 2},
		},
	}
}
