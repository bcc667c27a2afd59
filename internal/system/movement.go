// internal/system/movement.go
package system

import (
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/gridmap"
)

// MovementSystem ведёт врагов по их снимку пути.
// За тик враг проходит не больше одной точки маршрута: остаток шага
// на следующий отрезок не переносится.
type MovementSystem struct {
	ecs    *entity.ECS
	layout gridmap.Layout
}

func NewMovementSystem(ecs *entity.ECS, layout gridmap.Layout) *MovementSystem {
	return &MovementSystem{ecs: ecs, layout: layout}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !enemy.Alive {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasPath || !hasVel {
			continue
		}

		if path.AtEnd() {
			enemy.ReachedEnd = true
			enemy.Alive = false
			continue
		}

		targetCell := path.Cells[path.CurrentIndex+1]
		tx, ty := s.layout.ToWorld(targetCell)
		if utils.Distance(pos.X, pos.Y, tx, ty) < config.WaypointEpsilon {
			path.CurrentIndex++
			continue
		}

		moveDistance := vel.Speed * speedMultiplier(s.ecs, id) * deltaTime
		x, y, arrived := utils.MoveTowards(pos.X, pos.Y, tx, ty, moveDistance)
		pos.X, pos.Y = x, y
		if arrived {
			path.CurrentIndex++
		}
	}
}
