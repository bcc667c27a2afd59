// internal/system/projectile.go
package system

import (
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/types"
	"go-maze-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряды самонаводящиеся: каждый тик летят к текущей позиции цели.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		// Цель умерла или пропала: снаряд исчезает без урона
		if !s.ecs.IsAliveEnemy(proj.TargetID) {
			s.removeProjectile(id)
			continue
		}
		targetPos, ok := s.ecs.Positions[proj.TargetID]
		if !ok {
			s.removeProjectile(id)
			continue
		}

		if utils.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y) < config.ProjectileHitRadius {
			s.hitTarget(id, proj.TargetID, proj.Damage)
			continue
		}

		x, y, arrived := utils.MoveTowards(pos.X, pos.Y, targetPos.X, targetPos.Y, proj.Speed*deltaTime)
		pos.X, pos.Y = x, y
		if arrived {
			s.hitTarget(id, proj.TargetID, proj.Damage)
		}
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	s.ecs.RemoveEntity(id)
}

func (s *ProjectileSystem) hitTarget(projectileID, targetID types.EntityID, damage int) {
	ApplyDamage(s.ecs, targetID, damage)
	s.removeProjectile(projectileID)
}

// Clear удаляет все снаряды.
func (s *ProjectileSystem) Clear() {
	for _, id := range s.ecs.ProjectileIDs() {
		s.removeProjectile(id)
	}
}
