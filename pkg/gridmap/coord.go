package gridmap

import (
	"fmt"
	"sort"

	"go-maze-defense/pkg/utils"
)

// Coord is a cell position on the grid. X grows to the right, Y grows down.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NeighborDirections lists the 4-neighbour offsets in expansion order: +y, +x, -y, -x.
// The order decides which of several equal-length paths A* returns.
var NeighborDirections = [4]Coord{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Distance returns the Manhattan distance between two cells.
func (c Coord) Distance(o Coord) int {
	return utils.Abs(c.X-o.X) + utils.Abs(c.Y-o.Y)
}

// Neighbors returns the 4-connected neighbours in expansion order, unfiltered.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range NeighborDirections {
		out[i] = c.Add(d)
	}
	return out
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ObstacleSet is the set of impassable cells.
type ObstacleSet map[Coord]struct{}

// NewObstacleSet builds a set from the given cells.
func NewObstacleSet(cells ...Coord) ObstacleSet {
	s := make(ObstacleSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s ObstacleSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s ObstacleSet) Add(c Coord)    { s[c] = struct{}{} }
func (s ObstacleSet) Remove(c Coord) { delete(s, c) }
func (s ObstacleSet) Len() int       { return len(s) }

// Clone returns an independent copy. A nil set clones to an empty one.
func (s ObstacleSet) Clone() ObstacleSet {
	out := make(ObstacleSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// With returns a copy of the set extended by c; the receiver is not modified.
func (s ObstacleSet) With(c Coord) ObstacleSet {
	out := s.Clone()
	out[c] = struct{}{}
	return out
}

// Sorted lists the cells in row-major order.
func (s ObstacleSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
