// Package economy is the money and lives ledger of a game session.
package economy

import "go-maze-defense/internal/config"

// Economy tracks money, lives and cumulative counters. It has no notion of time.
type Economy struct {
	Money          int
	Lives          int
	MaxLives       int
	TotalEarned    int
	TotalSpent     int
	EnemiesKilled  int
	WavesCompleted int

	startMoney int
	startLives int
}

// Snapshot is a read-only copy of the ledger.
type Snapshot struct {
	Money          int `json:"money"`
	Lives          int `json:"lives"`
	MaxLives       int `json:"max_lives"`
	TotalEarned    int `json:"total_earned"`
	TotalSpent     int `json:"total_spent"`
	EnemiesKilled  int `json:"enemies_killed"`
	WavesCompleted int `json:"waves_completed"`
}

func New(money, lives int) *Economy {
	e := &Economy{startMoney: money, startLives: lives}
	e.Reset()
	return e
}

// Default returns a ledger with the standard starting money and lives.
func Default() *Economy {
	return New(config.StartingMoney, config.StartingLives)
}

// Reset restores the starting values and clears all counters.
func (e *Economy) Reset() {
	*e = Economy{
		Money:      e.startMoney,
		Lives:      e.startLives,
		MaxLives:   e.startLives,
		startMoney: e.startMoney,
		startLives: e.startLives,
	}
}

func (e *Economy) CanAfford(amount int) bool {
	return amount >= 0 && e.Money >= amount
}

// Spend fails without changes when money is short or the amount is negative.
func (e *Economy) Spend(amount int) bool {
	if !e.CanAfford(amount) {
		return false
	}
	e.Money -= amount
	e.TotalSpent += amount
	return true
}

func (e *Economy) Earn(amount int) {
	e.Money += amount
	e.TotalEarned += amount
}

func (e *Economy) EnemyKilled(reward int) {
	e.Earn(reward)
	e.EnemiesKilled++
}

// EnemyReachedEnd takes damage lives, never going below zero.
func (e *Economy) EnemyReachedEnd(damage int) {
	e.Lives -= damage
	if e.Lives < 0 {
		e.Lives = 0
	}
}

func (e *Economy) IsGameOver() bool {
	return e.Lives <= 0
}

// WaveCompleted counts the wave and pays 10 + 5 × (completed waves, this one included).
func (e *Economy) WaveCompleted() int {
	e.WavesCompleted++
	bonus := config.WaveBonusBase + config.WaveBonusPerWave*e.WavesCompleted
	e.Earn(bonus)
	return bonus
}

func (e *Economy) Snapshot() Snapshot {
	return Snapshot{
		Money:          e.Money,
		Lives:          e.Lives,
		MaxLives:       e.MaxLives,
		TotalEarned:    e.TotalEarned,
		TotalSpent:     e.TotalSpent,
		EnemiesKilled:  e.EnemiesKilled,
		WavesCompleted: e.WavesCompleted,
	}
}
