// internal/event/types.go
package event

import (
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/gridmap"
)

const (
	TowerPlaced       EventType = "tower_placed"        // Башня построена
	TowerRemoved      EventType = "tower_removed"       // Башня снесена
	PlacementRejected EventType = "placement_rejected"  // Постройка отклонена
	WaveStarted       EventType = "wave_started"        // Волна началась
	EnemySpawned      EventType = "enemy_spawned"       // Враг появился
	TowerFired        EventType = "tower_fired"         // Башня выстрелила
	EnemyKilled       EventType = "enemy_killed"        // Враг уничтожен
	EnemyReachedEnd   EventType = "enemy_reached_end"   // Враг дошёл до выхода
	WaveComplete      EventType = "wave_complete"       // Волна закончилась
	AllWavesComplete  EventType = "all_waves_complete"  // Волн больше нет
	GameOver          EventType = "game_over"           // Жизни кончились
)

// Коды причин отказа в постройке
const (
	ReasonAnchor       = "anchor"
	ReasonOccupied     = "occupied"
	ReasonBlocksPath   = "blocks_path"
	ReasonFunds        = "funds"
	ReasonInvalidCoord = "invalid_coord"
	ReasonUnknownTower = "unknown_tower"
	ReasonGameOver     = "game_over"
)

// TowerData — данные для TowerPlaced/TowerRemoved
type TowerData struct {
	ID   types.EntityID `json:"id"`
	Kind defs.TowerKind `json:"kind"`
	Cell gridmap.Coord  `json:"cell"`
	Cost int            `json:"cost"`
}

// RejectionData — данные для PlacementRejected
type RejectionData struct {
	Kind   defs.TowerKind `json:"kind"`
	Cell   gridmap.Coord  `json:"cell"`
	Reason string         `json:"reason"`
}

// EnemyData — данные для EnemySpawned/EnemyKilled/EnemyReachedEnd
type EnemyData struct {
	ID     types.EntityID `json:"id"`
	Kind   defs.EnemyKind `json:"kind"`
	Reward int            `json:"reward"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
}

// FireData — данные для TowerFired
type FireData struct {
	TowerID  types.EntityID `json:"tower_id"`
	Kind     defs.TowerKind `json:"kind"`
	TargetID types.EntityID `json:"target_id"`
	Instant  bool           `json:"instant"`
}

// WaveData — данные для событий волны
type WaveData struct {
	Number  int `json:"number"`
	Total   int `json:"total"`
	Enemies int `json:"enemies,omitempty"`
}

// GameOverData — итог партии
type GameOverData struct {
	WavesCompleted int `json:"waves_completed"`
	EnemiesKilled  int `json:"enemies_killed"`
}
