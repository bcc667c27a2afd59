// component/tower.go
package component

import (
	"go-maze-defense/internal/defs"
	"go-maze-defense/pkg/gridmap"
)

type Tower struct {
	Kind  defs.TowerKind
	Cell  gridmap.Coord // Клетка, на которой стоит башня
	Cost  int
	HP    int
	MaxHP int
}
