package gridmap

import (
	"fmt"
)

// CellKind describes what occupies a grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellTower
	CellDecoration
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellTower:
		return "tower"
	case CellDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Cell is the occupancy of one grid cell. Occupant is the tower entity ID for CellTower.
type Cell struct {
	Kind     CellKind
	Occupant uint64
}

// GridOptions configures NewGrid.
type GridOptions struct {
	Width  int
	Height int
	Start  Coord
	End    Coord
	Layout Layout
	// Decorations are candidate cells tried in order; any that is invalid
	// (anchor, occupied, out of bounds, or sealing the maze) is skipped.
	Decorations []Coord
}

// DefaultAnchors returns the start and end cells at the middle of the left and right edges.
func DefaultAnchors(width, height int) (Coord, Coord) {
	return Coord{X: 0, Y: height / 2}, Coord{X: width - 1, Y: height / 2}
}

// Grid owns cell occupancy, the committed obstacle set and the current path.
// Every mutating call either keeps start connected to end or is rejected without changes.
type Grid struct {
	width       int
	height      int
	start       Coord
	end         Coord
	layout      Layout
	cells       map[Coord]Cell
	obstacles   ObstacleSet
	decorations []Coord
	path        []Coord
}

func NewGrid(opts GridOptions) (*Grid, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidGrid, opts.Width, opts.Height)
	}
	if opts.Layout.TileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v", ErrInvalidGrid, opts.Layout.TileSize)
	}
	g := &Grid{
		width:     opts.Width,
		height:    opts.Height,
		start:     opts.Start,
		end:       opts.End,
		layout:    opts.Layout,
		cells:     make(map[Coord]Cell),
		obstacles: make(ObstacleSet),
	}
	if !g.InBounds(g.start) || !g.InBounds(g.end) {
		return nil, fmt.Errorf("%w: anchors %v/%v outside %dx%d", ErrInvalidGrid, g.start, g.end, g.width, g.height)
	}
	if g.start == g.end {
		return nil, fmt.Errorf("%w: start and end coincide at %v", ErrInvalidGrid, g.start)
	}
	g.path = g.pathfinder(g.obstacles).FindPath(g.start, g.end)

	for _, c := range opts.Decorations {
		// Невалидные кандидаты просто пропускаются
		_ = g.PlaceDecoration(c)
	}
	return g, nil
}

func (g *Grid) pathfinder(obstacles ObstacleSet) *Pathfinder {
	return NewPathfinder(g.width, g.height, obstacles)
}

func (g *Grid) Width() int     { return g.width }
func (g *Grid) Height() int    { return g.height }
func (g *Grid) Start() Coord   { return g.start }
func (g *Grid) End() Coord     { return g.end }
func (g *Grid) Layout() Layout { return g.layout }

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

func (g *Grid) IsAnchor(c Coord) bool {
	return c == g.start || c == g.end
}

// Cell returns the occupancy of c.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v", ErrInvalidCoord, c)
	}
	return g.cells[c], nil
}

// Obstacles returns a copy of the committed obstacle set.
func (g *Grid) Obstacles() ObstacleSet {
	return g.obstacles.Clone()
}

// Path returns a copy of the current path; callers may keep it as a snapshot.
func (g *Grid) Path() []Coord {
	out := make([]Coord, len(g.path))
	copy(out, g.path)
	return out
}

// PathLength returns the number of cells on the current path.
func (g *Grid) PathLength() int {
	return len(g.path)
}

// HasPath re-runs the search on the committed obstacles.
func (g *Grid) HasPath() bool {
	return g.pathfinder(g.obstacles).HasPath(g.start, g.end)
}

// Decorations returns the decoration cells in the order they were placed.
func (g *Grid) Decorations() []Coord {
	out := make([]Coord, len(g.decorations))
	copy(out, g.decorations)
	return out
}

// MazeFactor is the current path length in steps divided by the Manhattan distance between anchors.
func (g *Grid) MazeFactor() float64 {
	direct := g.start.Distance(g.end)
	if direct == 0 || len(g.path) == 0 {
		return 1
	}
	return float64(len(g.path)-1) / float64(direct)
}

// ToWorld returns the world-space centre of c.
func (g *Grid) ToWorld(c Coord) (float64, float64) {
	return g.layout.ToWorld(c)
}

// FromWorld returns the cell under the world point, rejecting points outside the grid.
func (g *Grid) FromWorld(x, y float64) (Coord, bool) {
	c := g.layout.CellAt(x, y)
	if !g.InBounds(c) {
		return Coord{}, false
	}
	return c, true
}

// ValidatePlacement checks whether c may become an obstacle. The check runs
// against a trial obstacle set and never touches committed state.
func (g *Grid) ValidatePlacement(c Coord) error {
	_, err := g.trialPath(c)
	return err
}

func (g *Grid) IsValidPlacement(c Coord) bool {
	return g.ValidatePlacement(c) == nil
}

// trialPath validates c and returns the path that would result from occupying it.
func (g *Grid) trialPath(c Coord) ([]Coord, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoord, c)
	}
	if g.IsAnchor(c) {
		return nil, fmt.Errorf("%w: %v", ErrAnchorCell, c)
	}
	if cell := g.cells[c]; cell.Kind != CellEmpty {
		return nil, fmt.Errorf("%w: %v holds %s", ErrOccupied, c, cell.Kind)
	}
	path := g.pathfinder(g.obstacles.With(c)).FindPath(g.start, g.end)
	if path == nil {
		return nil, fmt.Errorf("%w: %v", ErrWouldBlockPath, c)
	}
	return path, nil
}

// PlaceTower re-validates c and commits the tower: occupancy, obstacle and the new path.
func (g *Grid) PlaceTower(c Coord, occupant uint64) error {
	return g.occupy(c, Cell{Kind: CellTower, Occupant: occupant})
}

// PlaceDecoration occupies c with a passive obstacle, under the same rules as towers.
func (g *Grid) PlaceDecoration(c Coord) error {
	if err := g.occupy(c, Cell{Kind: CellDecoration}); err != nil {
		return err
	}
	g.decorations = append(g.decorations, c)
	return nil
}

func (g *Grid) occupy(c Coord, cell Cell) error {
	path, err := g.trialPath(c)
	if err != nil {
		return err
	}
	g.cells[c] = cell
	g.obstacles.Add(c)
	g.path = path
	return nil
}

// RemoveTower clears a tower cell and recomputes the path. It returns the removed occupant.
// Decorations cannot be removed.
func (g *Grid) RemoveTower(c Coord) (uint64, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCoord, c)
	}
	cell := g.cells[c]
	if cell.Kind != CellTower {
		return 0, fmt.Errorf("%w: %v", ErrNoTower, c)
	}
	delete(g.cells, c)
	g.obstacles.Remove(c)
	g.path = g.pathfinder(g.obstacles).FindPath(g.start, g.end)
	return cell.Occupant, nil
}

// Towers returns the occupant IDs keyed by cell.
func (g *Grid) Towers() map[Coord]uint64 {
	out := make(map[Coord]uint64)
	for c, cell := range g.cells {
		if cell.Kind == CellTower {
			out[c] = cell.Occupant
		}
	}
	return out
}
