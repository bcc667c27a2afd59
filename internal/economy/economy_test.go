package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpendAndEarn(t *testing.T) {
	e := New(100, 20)

	assert.False(t, e.Spend(150))
	assert.Equal(t, 100, e.Money)
	assert.Equal(t, 0, e.TotalSpent)

	assert.True(t, e.Spend(50))
	assert.Equal(t, 50, e.Money)
	assert.Equal(t, 50, e.TotalSpent)

	e.Earn(30)
	assert.Equal(t, 80, e.Money)
	assert.Equal(t, 30, e.TotalEarned)

	assert.False(t, e.Spend(-5))
	assert.Equal(t, 80, e.Money)
}

func TestSpend_ExactBalance(t *testing.T) {
	e := New(50, 1)
	assert.True(t, e.Spend(50))
	assert.Equal(t, 0, e.Money)
	assert.False(t, e.Spend(1))
}

func TestEnemyKilled(t *testing.T) {
	e := New(0, 20)
	e.EnemyKilled(5)
	e.EnemyKilled(8)
	assert.Equal(t, 13, e.Money)
	assert.Equal(t, 13, e.TotalEarned)
	assert.Equal(t, 2, e.EnemiesKilled)
}

func TestEnemyReachedEnd_ClampsAtZero(t *testing.T) {
	e := New(0, 2)
	e.EnemyReachedEnd(1)
	assert.False(t, e.IsGameOver())
	e.EnemyReachedEnd(1)
	assert.True(t, e.IsGameOver())
	e.EnemyReachedEnd(5)
	assert.Equal(t, 0, e.Lives)
}

func TestWaveCompleted_Bonus(t *testing.T) {
	e := New(0, 20)
	assert.Equal(t, 15, e.WaveCompleted())
	assert.Equal(t, 20, e.WaveCompleted())
	assert.Equal(t, 25, e.WaveCompleted())
	assert.Equal(t, 3, e.WavesCompleted)
	assert.Equal(t, 60, e.Money)
}

func TestReset(t *testing.T) {
	e := Default()
	e.Spend(100)
	e.EnemyKilled(5)
	e.EnemyReachedEnd(3)
	e.WaveCompleted()
	e.Reset()
	assert.Equal(t, Snapshot{Money: 150, Lives: 20, MaxLives: 20}, e.Snapshot())
}
