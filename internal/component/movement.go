// component/movement.go
package component

import "go-maze-defense/pkg/gridmap"

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (мировых единиц в секунду)
type Velocity struct {
	Speed float64
}

// Path — снимок пути на момент появления врага.
// CurrentIndex — последняя достигнутая точка, следующая цель Cells[CurrentIndex+1].
type Path struct {
	Cells        []gridmap.Coord
	CurrentIndex int
}

// AtEnd reports whether the final waypoint has been consumed or reached.
func (p *Path) AtEnd() bool {
	return p.CurrentIndex >= len(p.Cells)-1
}
