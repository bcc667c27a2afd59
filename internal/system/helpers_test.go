package system

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/gridmap"
)

var testLayout = gridmap.Layout{TileSize: 32}

func addEnemy(ecs *entity.ECS, x, y float64, hp int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{Kind: defs.EnemyWalker, Reward: 5, Alive: true}
	return id
}

func addTower(ecs *entity.ECS, kind defs.TowerKind, x, y float64) types.EntityID {
	def := defs.DefaultLibrary().Towers[kind]
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{Kind: kind, Cost: def.Cost, HP: def.HP, MaxHP: def.HP}
	ecs.Combats[id] = &component.Combat{
		Damage:       def.Damage,
		Range:        testLayout.TilesToWorld(def.Range),
		FireInterval: def.FireInterval,
	}
	return id
}

func recordAll(d *event.Dispatcher) *event.Recorder {
	rec := &event.Recorder{}
	d.SubscribeAll(rec)
	return rec
}

func eventTypes(events []event.Event) []event.EventType {
	out := make([]event.EventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
