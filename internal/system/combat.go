package system

import (
	"math"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/types"
	"go-maze-defense/internal/utils"
)

// CombatSystem управляет атакой башен.
// Цель выбирается заново каждый тик: ближайший живой враг в радиусе.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(now float64) {
	for _, id := range s.ecs.CombatIDs() {
		combat := s.ecs.Combats[id]
		tower, hasTower := s.ecs.Towers[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasTower || !hasPos {
			continue
		}

		mode := tower.Kind.FireMode()
		if mode == defs.FireNone {
			combat.TargetID = 0
			continue
		}

		combat.TargetID = s.findNearestEnemyInRange(pos, combat.Range)
		if combat.TargetID == 0 || !combat.Ready(now) {
			continue
		}

		combat.LastFired = now
		combat.HasFired = true
		switch mode {
		case defs.FireProjectile:
			s.createProjectile(id, combat, tower.Kind)
		case defs.FireInstant:
			// Снайпер бьёт сразу, снаряда нет
			ApplyDamage(s.ecs, combat.TargetID, combat.Damage)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.FireData{
			TowerID:  id,
			Kind:     tower.Kind,
			TargetID: combat.TargetID,
			Instant:  mode == defs.FireInstant,
		}})
	}
}

// findNearestEnemyInRange ищет ближайшего живого врага. При равных расстояниях
// побеждает меньший ID, так как обход идёт по возрастанию.
func (s *CombatSystem) findNearestEnemyInRange(towerPos *component.Position, rangeRadius float64) types.EntityID {
	var nearestEnemy types.EntityID
	minDistance := math.MaxFloat64
	for _, enemyID := range s.ecs.EnemyIDs() {
		if !s.ecs.Enemies[enemyID].Alive {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		distance := utils.Distance(towerPos.X, towerPos.Y, enemyPos.X, enemyPos.Y)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearestEnemy = enemyID
		}
	}
	return nearestEnemy
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, combat *component.Combat, kind defs.TowerKind) {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID: combat.TargetID,
		SourceID: towerID,
		Speed:    config.ProjectileSpeed,
		Damage:   combat.Damage,
		Kind:     kind,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
}
