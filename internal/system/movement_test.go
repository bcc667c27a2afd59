package system

import (
	"testing"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnOnPath(ecs *entity.ECS, cells []gridmap.Coord, speed float64) types.EntityID {
	x, y := testLayout.ToWorld(cells[0])
	id := addEnemy(ecs, x, y, 10)
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Cells: cells}
	return id
}

func TestMovementSystem_FollowsWaypoints(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, testLayout)
	cells := []gridmap.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	id := spawnOnPath(ecs, cells, 32)
	require.Contains(t, ecs.Enemies, id)

	s.Update(0.5)
	assert.InDelta(t, 32.0, ecs.Positions[id].X, 1e-9)
	assert.Equal(t, 0, ecs.Paths[id].CurrentIndex)

	s.Update(0.5)
	assert.InDelta(t, 48.0, ecs.Positions[id].X, 1e-9)
	assert.Equal(t, 1, ecs.Paths[id].CurrentIndex)

	s.Update(0.5)
	s.Update(0.5)
	assert.InDelta(t, 80.0, ecs.Positions[id].X, 1e-9)
	assert.Equal(t, 2, ecs.Paths[id].CurrentIndex)
	assert.True(t, ecs.Enemies[id].Alive, "reaching the last waypoint is reported on the next tick")

	s.Update(0.5)
	assert.True(t, ecs.Enemies[id].ReachedEnd)
	assert.False(t, ecs.Enemies[id].Alive)
	assert.InDelta(t, 16.0, ecs.Positions[id].Y, 1e-9)
}

func TestMovementSystem_NoOvershootCarry(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, testLayout)
	cells := []gridmap.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	id := spawnOnPath(ecs, cells, 320)

	// Шаг в 320 пикселей покрывает весь путь, но за тик берётся одна точка
	s.Update(1)
	assert.InDelta(t, 48.0, ecs.Positions[id].X, 1e-9)
	assert.Equal(t, 1, ecs.Paths[id].CurrentIndex)
}

func TestMovementSystem_SlowEffect(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, testLayout)
	cells := []gridmap.Coord{{X: 0, Y: 0}, {X: 3, Y: 0}}
	id := spawnOnPath(ecs, cells, 32)
	ApplySlow(ecs, id, 0.5, 10)

	s.Update(1)
	assert.InDelta(t, 32.0, ecs.Positions[id].X, 1e-9)
}

func TestMovementSystem_SkipsDeadEnemies(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, testLayout)
	cells := []gridmap.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}
	id := spawnOnPath(ecs, cells, 32)
	ecs.Enemies[id].Alive = false

	s.Update(0.5)
	assert.InDelta(t, 16.0, ecs.Positions[id].X, 1e-9)
	assert.False(t, ecs.Enemies[id].ReachedEnd)
}

func TestStatusEffectSystem_Expires(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 10)
	ApplySlow(ecs, id, 0.5, 1)
	s := NewStatusEffectSystem(ecs)

	s.Update(0.6)
	assert.Contains(t, ecs.SlowEffects, id)
	s.Update(0.4)
	assert.NotContains(t, ecs.SlowEffects, id)
	assert.Equal(t, 1.0, speedMultiplier(ecs, id))
}

func TestApplyDamage_ReportsDeathOnce(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 20)

	assert.False(t, ApplyDamage(ecs, id, 10))
	assert.True(t, ApplyDamage(ecs, id, 15))
	assert.Equal(t, 0, ecs.Healths[id].Value)
	assert.False(t, ApplyDamage(ecs, id, 15), "dead enemies take no further damage")
	assert.False(t, ApplyDamage(ecs, 999, 15))
}
