// internal/system/utils.go
package system

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/types"
)

// ApplyDamage наносит урон врагу. Возвращает true только на переходе
// «жив → мёртв», поэтому смерть сообщается ровно один раз.
// Урон мёртвому или дошедшему до выхода врагу игнорируется.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	enemy, isEnemy := ecs.Enemies[entityID]
	health, hasHealth := ecs.Healths[entityID]
	if !isEnemy || !hasHealth || !enemy.Alive {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	health.Value = 0
	enemy.Alive = false
	return true
}

// ApplySlow вешает на врага замедление. Повторный вызов перезаписывает эффект.
func ApplySlow(ecs *entity.ECS, entityID types.EntityID, factor, duration float64) {
	if !ecs.IsAliveEnemy(entityID) || duration <= 0 {
		return
	}
	ecs.SlowEffects[entityID] = &component.SlowEffect{
		Timer:      duration,
		SlowFactor: factor,
	}
}

// speedMultiplier возвращает текущий множитель скорости сущности.
func speedMultiplier(ecs *entity.ECS, id types.EntityID) float64 {
	if slow, ok := ecs.SlowEffects[id]; ok {
		return slow.SlowFactor
	}
	return 1.0
}
