package gridmap

import "math"

// Layout maps grid cells to world (pixel) coordinates.
// It is a pure affine transform: origin offset plus tile size.
type Layout struct {
	TileSize float64 `json:"tile_size"`
	OffsetX  float64 `json:"offset_x"`
	OffsetY  float64 `json:"offset_y"`
}

// ToWorld returns the world position of the cell centre.
func (l Layout) ToWorld(c Coord) (float64, float64) {
	x := l.OffsetX + float64(c.X)*l.TileSize + l.TileSize/2
	y := l.OffsetY + float64(c.Y)*l.TileSize + l.TileSize/2
	return x, y
}

// CellAt returns the cell containing the world point, without bounds checks.
func (l Layout) CellAt(x, y float64) Coord {
	return Coord{
		X: int(math.Floor((x - l.OffsetX) / l.TileSize)),
		Y: int(math.Floor((y - l.OffsetY) / l.TileSize)),
	}
}

// TilesToWorld converts a distance measured in tiles to world units.
func (l Layout) TilesToWorld(tiles float64) float64 {
	return tiles * l.TileSize
}
