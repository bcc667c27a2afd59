// internal/app/tower_management.go
package app

import (
	"errors"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/system"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/gridmap"
)

var (
	ErrInsufficientFunds = errors.New("app: insufficient funds")
	ErrUnknownTowerKind  = errors.New("app: unknown tower kind")
	ErrGameOver          = errors.New("app: game is over")

	ErrNoMoreWaves    = system.ErrNoMoreWaves
	ErrWaveInProgress = system.ErrWaveInProgress
)

// PlaceTower ставит башню на клетку c. При любом отказе состояние не меняется,
// а причина отправляется событием PlacementRejected.
func (g *Game) PlaceTower(kind defs.TowerKind, c gridmap.Coord) (types.EntityID, error) {
	def, err := g.canPlaceTower(kind, c)
	if err != nil {
		g.logger.Warnf("place %s at %v rejected: %v", kind, c, err)
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlacementRejected, Data: event.RejectionData{
			Kind:   kind,
			Cell:   c,
			Reason: rejectionReason(err),
		}})
		return 0, err
	}

	id := g.ECS.NewEntity()
	// Проверка уже пройдена, PlaceTower повторяет её и не должна отказать
	if err := g.grid.PlaceTower(c, uint64(id)); err != nil {
		return 0, err
	}
	g.economy.Spend(def.Cost)
	g.createTowerEntity(id, def, c)

	g.logger.Infof("%s #%d placed at %v, path now %d cells", kind, id, c, g.grid.PathLength())
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:   id,
		Kind: kind,
		Cell: c,
		Cost: def.Cost,
	}})
	return id, nil
}

// RemoveTower сносит башню с клетки c. Деньги не возвращаются.
func (g *Game) RemoveTower(c gridmap.Coord) error {
	if g.ECS.GameState.Finished() {
		return ErrGameOver
	}
	occupant, err := g.grid.RemoveTower(c)
	if err != nil {
		return err
	}

	id := types.EntityID(occupant)
	data := event.TowerData{ID: id, Cell: c}
	if tower, ok := g.ECS.Towers[id]; ok {
		data.Kind = tower.Kind
		data.Cost = tower.Cost
	}
	g.ECS.RemoveEntity(id)

	g.logger.Infof("%s #%d removed from %v, path now %d cells", data.Kind, id, c, g.grid.PathLength())
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: data})
	return nil
}

// canPlaceTower проверяет фазу, тип, деньги и клетку, в этом порядке.
func (g *Game) canPlaceTower(kind defs.TowerKind, c gridmap.Coord) (defs.TowerDefinition, error) {
	if g.ECS.GameState.Finished() {
		return defs.TowerDefinition{}, ErrGameOver
	}
	def, ok := g.opts.Library.Tower(kind)
	if !ok {
		return defs.TowerDefinition{}, ErrUnknownTowerKind
	}
	if !g.economy.CanAfford(def.Cost) {
		return def, ErrInsufficientFunds
	}
	if err := g.grid.ValidatePlacement(c); err != nil {
		return def, err
	}
	return def, nil
}

// CanPlace reports whether kind could be placed at c right now.
func (g *Game) CanPlace(kind defs.TowerKind, c gridmap.Coord) bool {
	_, err := g.canPlaceTower(kind, c)
	return err == nil
}

func (g *Game) createTowerEntity(id types.EntityID, def defs.TowerDefinition, c gridmap.Coord) {
	layout := g.grid.Layout()
	x, y := layout.ToWorld(c)

	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		Kind:  def.ID,
		Cell:  c,
		Cost:  def.Cost,
		HP:    def.HP,
		MaxHP: def.HP,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:       def.Visuals.Color,
		Radius:      float32(layout.TileSize * def.Visuals.RadiusFactor),
		StrokeWidth: float32(def.Visuals.StrokeWidth),
	}
	// Баррикада только перекрывает путь
	if def.ID.FireMode() != defs.FireNone {
		g.ECS.Combats[id] = &component.Combat{
			Damage:       def.Damage,
			Range:        layout.TilesToWorld(def.Range),
			FireInterval: def.FireInterval,
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrGameOver):
		return event.ReasonGameOver
	case errors.Is(err, ErrUnknownTowerKind):
		return event.ReasonUnknownTower
	case errors.Is(err, ErrInsufficientFunds):
		return event.ReasonFunds
	case errors.Is(err, gridmap.ErrAnchorCell):
		return event.ReasonAnchor
	case errors.Is(err, gridmap.ErrOccupied):
		return event.ReasonOccupied
	case errors.Is(err, gridmap.ErrWouldBlockPath):
		return event.ReasonBlocksPath
	default:
		return event.ReasonInvalidCoord
	}
}
