// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Combats     map[types.EntityID]*component.Combat
	Enemies     map[types.EntityID]*component.Enemy
	SlowEffects map[types.EntityID]*component.SlowEffect
	Wave        *component.Wave
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Combats:     make(map[types.EntityID]*component.Combat),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		SlowEffects: make(map[types.EntityID]*component.SlowEffect),
		Wave:        nil,
		GameState:   component.BuildState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Combats, id)
	delete(ecs.Enemies, id)
	delete(ecs.SlowEffects, id)
}

// IsAliveEnemy reports whether id is a live enemy. Removed or dead enemies are simply absent.
func (ecs *ECS) IsAliveEnemy(id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	return ok && enemy.Alive
}

// LiveEnemyCount counts enemies that are still alive.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Итерация по map в Go случайна, поэтому системы обходят сущности по возрастанию ID.

func (ecs *ECS) EnemyIDs() []types.EntityID      { return sortedKeys(ecs.Enemies) }
func (ecs *ECS) TowerIDs() []types.EntityID      { return sortedKeys(ecs.Towers) }
func (ecs *ECS) CombatIDs() []types.EntityID     { return sortedKeys(ecs.Combats) }
func (ecs *ECS) ProjectileIDs() []types.EntityID { return sortedKeys(ecs.Projectiles) }
func (ecs *ECS) SlowEffectIDs() []types.EntityID { return sortedKeys(ecs.SlowEffects) }

func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
