package system

import (
	"testing"

	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatSystem_TargetsNearestInRange(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	s := NewCombatSystem(ecs, d)

	tower := addTower(ecs, defs.TowerRifleman, 0, 0)
	far := addEnemy(ecs, 100, 0, 30)
	near := addEnemy(ecs, 60, 0, 30)
	addEnemy(ecs, 500, 0, 30) // вне радиуса

	s.Update(0)
	assert.Equal(t, near, ecs.Combats[tower].TargetID)
	assert.NotEqual(t, far, ecs.Combats[tower].TargetID)
}

func TestCombatSystem_TieGoesToLowerID(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, event.NewDispatcher())

	tower := addTower(ecs, defs.TowerRifleman, 0, 0)
	first := addEnemy(ecs, 0, 64, 30)
	addEnemy(ecs, 64, 0, 30)

	s.Update(0)
	assert.Equal(t, first, ecs.Combats[tower].TargetID)
}

func TestCombatSystem_SkipsDeadEnemies(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, event.NewDispatcher())

	tower := addTower(ecs, defs.TowerRifleman, 0, 0)
	dead := addEnemy(ecs, 10, 0, 30)
	ecs.Enemies[dead].Alive = false
	alive := addEnemy(ecs, 90, 0, 30)

	s.Update(0)
	assert.Equal(t, alive, ecs.Combats[tower].TargetID)
}

func TestCombatSystem_RiflemanSpawnsProjectile(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := recordAll(d)
	s := NewCombatSystem(ecs, d)

	tower := addTower(ecs, defs.TowerRifleman, 0, 0)
	enemy := addEnemy(ecs, 64, 0, 30)

	s.Update(0)
	require.Len(t, ecs.Projectiles, 1)
	for _, p := range ecs.Projectiles {
		assert.Equal(t, enemy, p.TargetID)
		assert.Equal(t, tower, p.SourceID)
		assert.Equal(t, 10, p.Damage)
	}
	assert.Equal(t, 30, ecs.Healths[enemy].Value, "projectile damage lands on hit, not on fire")

	events := rec.Drain()
	require.Len(t, events, 1)
	fire := events[0].Data.(event.FireData)
	assert.Equal(t, event.TowerFired, events[0].Type)
	assert.False(t, fire.Instant)
}

func TestCombatSystem_SniperHitsInstantly(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := recordAll(d)
	s := NewCombatSystem(ecs, d)

	addTower(ecs, defs.TowerSniper, 0, 0)
	enemy := addEnemy(ecs, 200, 0, 50)

	s.Update(0)
	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, 10, ecs.Healths[enemy].Value)
	assert.Equal(t, []event.EventType{event.TowerFired}, eventTypes(rec.Drain()))
}

func TestCombatSystem_BarricadeNeverFires(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := recordAll(d)
	s := NewCombatSystem(ecs, d)

	tower := addTower(ecs, defs.TowerBarricade, 0, 0)
	addEnemy(ecs, 1, 0, 30)

	s.Update(0)
	s.Update(10)
	assert.Zero(t, ecs.Combats[tower].TargetID)
	assert.Empty(t, ecs.Projectiles)
	assert.Zero(t, rec.Len())
}

func TestCombatSystem_RespectsFireInterval(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, event.NewDispatcher())

	addTower(ecs, defs.TowerRifleman, 0, 0)
	addEnemy(ecs, 64, 0, 1000)

	s.Update(1.0)
	s.Update(1.2)
	assert.Len(t, ecs.Projectiles, 1)
	s.Update(1.5)
	assert.Len(t, ecs.Projectiles, 2)
}

func TestCombatSystem_OutOfRangeHoldsFire(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, event.NewDispatcher())

	tower := addTower(ecs, defs.TowerRifleman, 0, 0)
	addEnemy(ecs, 129, 0, 30)

	s.Update(0)
	assert.Zero(t, ecs.Combats[tower].TargetID)
	assert.Empty(t, ecs.Projectiles)
}
