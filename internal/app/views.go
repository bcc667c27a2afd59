// internal/app/views.go
package app

import (
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/gridmap"
)

// TowerView — то, что интерфейсу нужно знать о башне.
type TowerView struct {
	ID       types.EntityID `json:"id"`
	Kind     defs.TowerKind `json:"kind"`
	Cell     gridmap.Coord  `json:"cell"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Range    float64        `json:"range"`
	TargetID types.EntityID `json:"target_id,omitempty"`
	HP       int            `json:"hp"`
}

type EnemyView struct {
	ID         types.EntityID `json:"id"`
	Kind       defs.EnemyKind `json:"kind"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	HP         int            `json:"hp"`
	MaxHP      int            `json:"max_hp"`
	PathIndex  int            `json:"path_index"`
	PathLength int            `json:"path_length"`
	Slowed     bool           `json:"slowed,omitempty"`
}

// HealthRatio returns hp as a fraction of max hp.
func (v EnemyView) HealthRatio() float64 {
	if v.MaxHP <= 0 {
		return 0
	}
	return float64(v.HP) / float64(v.MaxHP)
}

type ProjectileView struct {
	ID       types.EntityID `json:"id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	TargetID types.EntityID `json:"target_id"`
}

// Towers lists towers in ID order.
func (g *Game) Towers() []TowerView {
	ids := g.ECS.TowerIDs()
	out := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		tower := g.ECS.Towers[id]
		v := TowerView{ID: id, Kind: tower.Kind, Cell: tower.Cell, HP: tower.HP}
		if pos, ok := g.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if combat, ok := g.ECS.Combats[id]; ok {
			v.Range = combat.Range
			v.TargetID = combat.TargetID
		}
		out = append(out, v)
	}
	return out
}

// Enemies lists live enemies in ID order.
func (g *Game) Enemies() []EnemyView {
	ids := g.ECS.EnemyIDs()
	out := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		enemy := g.ECS.Enemies[id]
		if !enemy.Alive {
			continue
		}
		v := EnemyView{ID: id, Kind: enemy.Kind}
		if pos, ok := g.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if h, ok := g.ECS.Healths[id]; ok {
			v.HP, v.MaxHP = h.Value, h.Max
		}
		if p, ok := g.ECS.Paths[id]; ok {
			v.PathIndex, v.PathLength = p.CurrentIndex, len(p.Cells)
		}
		_, v.Slowed = g.ECS.SlowEffects[id]
		out = append(out, v)
	}
	return out
}

func (g *Game) Projectiles() []ProjectileView {
	ids := g.ECS.ProjectileIDs()
	out := make([]ProjectileView, 0, len(ids))
	for _, id := range ids {
		v := ProjectileView{ID: id, TargetID: g.ECS.Projectiles[id].TargetID}
		if pos, ok := g.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		out = append(out, v)
	}
	return out
}

// TowerAt returns the tower standing on c.
func (g *Game) TowerAt(c gridmap.Coord) (TowerView, bool) {
	cell, err := g.grid.Cell(c)
	if err != nil || cell.Kind != gridmap.CellTower {
		return TowerView{}, false
	}
	for _, v := range g.Towers() {
		if v.ID == types.EntityID(cell.Occupant) {
			return v, true
		}
	}
	return TowerView{}, false
}
