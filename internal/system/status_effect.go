// internal/system/status_effect.go
package system

import "go-maze-defense/internal/entity"

// StatusEffectSystem ведёт таймеры замедлений.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update снимает истёкшие эффекты, после чего множитель скорости снова 1.
// Эффекты на мёртвых врагах уходят вместе с сущностью.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SlowEffectIDs() {
		if s.ecs.SlowEffects[id].Advance(deltaTime) || !s.ecs.IsAliveEnemy(id) {
			delete(s.ecs.SlowEffects, id)
		}
	}
}
