package gridmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, w, h int, decorations ...Coord) *Grid {
	t.Helper()
	start, end := DefaultAnchors(w, h)
	g, err := NewGrid(GridOptions{
		Width:       w,
		Height:      h,
		Start:       start,
		End:         end,
		Layout:      Layout{TileSize: 32, OffsetX: 50, OffsetY: 50},
		Decorations: decorations,
	})
	require.NoError(t, err)
	return g
}

func TestNewGrid_InvalidOptions(t *testing.T) {
	layout := Layout{TileSize: 32}
	tests := []struct {
		name string
		opts GridOptions
	}{
		{"zero width", GridOptions{Width: 0, Height: 3, Start: Coord{0, 0}, End: Coord{0, 1}, Layout: layout}},
		{"start outside", GridOptions{Width: 3, Height: 3, Start: Coord{-1, 0}, End: Coord{2, 2}, Layout: layout}},
		{"end outside", GridOptions{Width: 3, Height: 3, Start: Coord{0, 0}, End: Coord{3, 2}, Layout: layout}},
		{"same anchors", GridOptions{Width: 3, Height: 3, Start: Coord{1, 1}, End: Coord{1, 1}, Layout: layout}},
		{"zero tile size", GridOptions{Width: 3, Height: 3, Start: Coord{0, 1}, End: Coord{2, 1}}},
		{"negative tile size", GridOptions{Width: 3, Height: 3, Start: Coord{0, 1}, End: Coord{2, 1}, Layout: Layout{TileSize: -8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.opts)
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}
}

func TestNewGrid_InitialPath(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	assert.Equal(t, Coord{0, 2}, g.Start())
	assert.Equal(t, Coord{4, 2}, g.End())
	path := g.Path()
	require.Len(t, path, 5)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.End(), path[len(path)-1])
	assert.InDelta(t, 1.0, g.MazeFactor(), 1e-9)
}

func TestPlaceTower_RejectsAnchorsAndOccupied(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	require.NoError(t, g.PlaceTower(Coord{2, 0}, 7))

	before := g.Path()
	beforeObstacles := g.Obstacles()

	assert.ErrorIs(t, g.PlaceTower(g.Start(), 1), ErrAnchorCell)
	assert.ErrorIs(t, g.PlaceTower(g.End(), 1), ErrAnchorCell)
	assert.ErrorIs(t, g.PlaceTower(Coord{2, 0}, 8), ErrOccupied)
	assert.ErrorIs(t, g.PlaceTower(Coord{5, 0}, 8), ErrInvalidCoord)
	assert.ErrorIs(t, g.PlaceTower(Coord{0, -1}, 8), ErrInvalidCoord)

	assert.Equal(t, before, g.Path())
	assert.Equal(t, beforeObstacles, g.Obstacles())
	cell, err := g.Cell(Coord{2, 0})
	require.NoError(t, err)
	assert.Equal(t, CellTower, cell.Kind)
	assert.Equal(t, uint64(7), cell.Occupant)
}

func TestPlaceTower_RejectsDisconnectingCell(t *testing.T) {
	// 3x2 grid, start (0,1), end (2,1). After (1,1) is taken, (1,0) is the only link left.
	g := newTestGrid(t, 3, 2)
	require.NoError(t, g.PlaceTower(Coord{1, 1}, 1))
	before := g.Path()
	assert.Equal(t, []Coord{{0, 1}, {0, 0}, {1, 0}, {2, 0}, {2, 1}}, before)

	assert.False(t, g.IsValidPlacement(Coord{1, 0}))
	err := g.PlaceTower(Coord{1, 0}, 2)
	assert.ErrorIs(t, err, ErrWouldBlockPath)

	cell, _ := g.Cell(Coord{1, 0})
	assert.Equal(t, CellEmpty, cell.Kind)
	assert.Equal(t, before, g.Path())
	assert.Equal(t, 1, g.Obstacles().Len())
	assert.True(t, g.HasPath())
}

func TestValidatePlacement_DoesNotMutate(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	path := g.Path()
	require.NoError(t, g.ValidatePlacement(Coord{2, 2}))
	assert.Equal(t, 0, g.Obstacles().Len())
	assert.Equal(t, path, g.Path())
	cell, err := g.Cell(Coord{2, 2})
	require.NoError(t, err)
	assert.Equal(t, CellEmpty, cell.Kind)
}

func TestPlaceTower_RecomputesPath(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	require.NoError(t, g.PlaceTower(Coord{2, 2}, 1))
	path := g.Path()
	assert.NotContains(t, path, Coord{2, 2})
	assert.Len(t, path, 7)
	assert.InDelta(t, 1.5, g.MazeFactor(), 1e-9)
}

func TestRemoveTower(t *testing.T) {
	g := newTestGrid(t, 5, 5, Coord{1, 0})
	require.NoError(t, g.PlaceTower(Coord{2, 2}, 42))

	id, err := g.RemoveTower(Coord{2, 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Len(t, g.Path(), 5)
	assert.False(t, g.Obstacles().Contains(Coord{2, 2}))

	_, err = g.RemoveTower(Coord{2, 2})
	assert.ErrorIs(t, err, ErrNoTower)
	_, err = g.RemoveTower(Coord{1, 0})
	assert.ErrorIs(t, err, ErrNoTower, "decorations are not removable")
	_, err = g.RemoveTower(Coord{9, 9})
	assert.ErrorIs(t, err, ErrInvalidCoord)
}

func TestNewGrid_DecorationsNeverSeal(t *testing.T) {
	// (1,1) would seal once (1,0) is taken; anchors and duplicates are skipped too.
	g := newTestGrid(t, 3, 2, Coord{1, 0}, Coord{1, 1}, Coord{0, 1}, Coord{1, 0}, Coord{7, 7})
	assert.Equal(t, []Coord{{1, 0}}, g.Decorations())
	assert.True(t, g.HasPath())
	cell, _ := g.Cell(Coord{1, 0})
	assert.Equal(t, CellDecoration, cell.Kind)
}

func TestConnectivityInvariant_RandomMutations(t *testing.T) {
	g := newTestGrid(t, 12, 9)
	rng := rand.New(rand.NewSource(7))
	var placed []Coord
	for i := 0; i < 400; i++ {
		if len(placed) > 0 && rng.Intn(4) == 0 {
			idx := rng.Intn(len(placed))
			_, err := g.RemoveTower(placed[idx])
			require.NoError(t, err)
			placed = append(placed[:idx], placed[idx+1:]...)
		} else {
			c := Coord{X: rng.Intn(12), Y: rng.Intn(9)}
			if err := g.PlaceTower(c, uint64(i+1)); err == nil {
				placed = append(placed, c)
			}
		}
		require.True(t, g.HasPath(), "iteration %d", i)
		path := g.Path()
		require.NotEmpty(t, path)
		require.Equal(t, g.Start(), path[0])
		require.Equal(t, g.End(), path[len(path)-1])
		for _, c := range path {
			require.False(t, g.Obstacles().Contains(c))
		}
	}
}

func TestGrid_PathIsSnapshot(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	snapshot := g.Path()
	require.NoError(t, g.PlaceTower(Coord{2, 2}, 1))
	assert.Len(t, snapshot, 5)
	snapshot[0] = Coord{9, 9}
	assert.Equal(t, g.Start(), g.Path()[0])
}

func TestLayout_WorldConversion(t *testing.T) {
	g := newTestGrid(t, 30, 20)
	x, y := g.ToWorld(Coord{0, 0})
	assert.Equal(t, 66.0, x)
	assert.Equal(t, 66.0, y)
	x, y = g.ToWorld(Coord{29, 19})
	assert.Equal(t, 50+29*32+16.0, x)
	assert.Equal(t, 50+19*32+16.0, y)

	c, ok := g.FromWorld(66, 66)
	require.True(t, ok)
	assert.Equal(t, Coord{0, 0}, c)
	c, ok = g.FromWorld(50+32*5+31.9, 50+32*3)
	require.True(t, ok)
	assert.Equal(t, Coord{5, 3}, c)

	_, ok = g.FromWorld(49.9, 60)
	assert.False(t, ok)
	_, ok = g.FromWorld(50+32*30, 60)
	assert.False(t, ok)
	_, ok = g.FromWorld(60, 50+32*20)
	assert.False(t, ok)
}

func TestCell_OutOfBounds(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	_, err := g.Cell(Coord{4, 0})
	assert.ErrorIs(t, err, ErrInvalidCoord)
	assert.ErrorIs(t, g.ValidatePlacement(Coord{-1, -1}), ErrInvalidCoord)
}
