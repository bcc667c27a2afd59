// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1060
	ScreenHeight = 800
	TileSize     = 32.0
	GridWidth    = 30
	GridHeight   = 20
	GridOffsetX  = 50.0
	GridOffsetY  = 50.0
	MaxDeltaTime = 0.06

	StartingMoney = 150
	StartingLives = 20
	DamagePerLeak = 1 // жизней за врага, дошедшего до выхода

	WaveBonusBase    = 10
	WaveBonusPerWave = 5

	// Декорации: сколько кандидатов пробуем и насколько они держатся от якорей
	DecorationCount     = 18
	DecorationAnchorGap = 2

	ProjectileSpeed     = 480.0 // пикселей в секунду
	ProjectileHitRadius = 5.0   // пикселей
	ProjectileRadius    = 3.0
	WaypointEpsilon     = 2.0 // пикселей

	TextOffsetX  = 10
	TextOffsetY  = 16
	EventLogSize = 1000
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GridLineColor     = color.RGBA{45, 50, 60, 255}
	PassableColor     = color.RGBA{34, 40, 49, 255}
	PathColor         = color.RGBA{70, 100, 120, 220}
	DecorationColor   = color.RGBA{90, 80, 70, 255}
	EntryColor        = color.RGBA{0, 200, 0, 255}
	ExitColor         = color.RGBA{220, 0, 0, 255}
	ValidHoverColor   = color.RGBA{80, 200, 120, 90}
	BlockedHoverColor = color.RGBA{220, 60, 60, 90}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	BuildStateColor   = color.RGBA{70, 130, 180, 220}
	WaveStateColor    = color.RGBA{220, 60, 60, 220}
	HealthBarColor    = color.RGBA{50, 205, 50, 255}
	HealthBackColor   = color.RGBA{120, 20, 20, 255}
	ProjectileColor   = color.RGBA{255, 255, 0, 255}
	SniperShotColor   = color.RGBA{255, 255, 255, 180}
	RangeColor        = color.RGBA{255, 255, 255, 40}
	StrokeWidth       = 1.0
)
