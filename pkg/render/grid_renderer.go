// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-maze-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer рисует клетки, путь и подсветку курсора.
// Статичная часть карты кешируется в mapImage и перерисовывается по Invalidate.
type GridRenderer struct {
	grid         *gridmap.Grid
	colors       MapColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // Поле для предрендеренной карты
	dirty        bool
}

func NewGridRenderer(grid *gridmap.Grid, colors MapColors, screenWidth, screenHeight int) *GridRenderer {
	return &GridRenderer{
		grid:         grid,
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		dirty:        true,
	}
}

// SetGrid switches to another grid, e.g. after a restart.
func (r *GridRenderer) SetGrid(grid *gridmap.Grid) {
	r.grid = grid
	r.dirty = true
}

// Invalidate помечает кеш карты устаревшим (башня поставлена или снесена).
func (r *GridRenderer) Invalidate() {
	r.dirty = true
}

// RenderMapImage перерисовывает фон: клетки, декорации, вход и выход.
func (r *GridRenderer) RenderMapImage() {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	layout := r.grid.Layout()
	size := float32(layout.TileSize)
	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			c := gridmap.Coord{X: x, Y: y}
			fill := r.colors.PassableColor
			switch {
			case c == r.grid.Start():
				fill = r.colors.EntryColor
			case c == r.grid.End():
				fill = r.colors.ExitColor
			default:
				if cell, err := r.grid.Cell(c); err == nil && cell.Kind == gridmap.CellDecoration {
					fill = r.colors.DecorationColor
				}
			}
			px, py := r.cellOrigin(c)
			vector.DrawFilledRect(r.mapImage, px, py, size, size, fill, false)
			vector.StrokeRect(r.mapImage, px, py, size, size, r.colors.StrokeWidth, r.colors.GridLineColor, false)
		}
	}
	r.drawAnchorLabel(r.grid.Start(), "S")
	r.drawAnchorLabel(r.grid.End(), "E")
	r.dirty = false
}

// Draw рисует фон и текущий путь.
func (r *GridRenderer) Draw(screen *ebiten.Image) {
	if r.dirty || r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)
	r.DrawPath(screen, r.grid.Path(), r.colors.PathColor)
}

// DrawPath draws a polyline through the centres of the path cells.
func (r *GridRenderer) DrawPath(screen *ebiten.Image, path []gridmap.Coord, clr color.Color) {
	layout := r.grid.Layout()
	for i := 0; i+1 < len(path); i++ {
		x1, y1 := layout.ToWorld(path[i])
		x2, y2 := layout.ToWorld(path[i+1])
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 3, clr, true)
	}
}

// DrawHover подсвечивает клетку под курсором: зелёным, если постройка возможна.
func (r *GridRenderer) DrawHover(screen *ebiten.Image, c gridmap.Coord, valid bool) {
	if !r.grid.InBounds(c) {
		return
	}
	clr := r.colors.BlockedHoverColor
	if valid {
		clr = r.colors.ValidHoverColor
	}
	size := float32(r.grid.Layout().TileSize)
	px, py := r.cellOrigin(c)
	vector.DrawFilledRect(screen, px, py, size, size, clr, false)
}

func (r *GridRenderer) drawAnchorLabel(c gridmap.Coord, label string) {
	x, y := r.grid.Layout().ToWorld(c)
	DrawText(r.mapImage, label, int(x)-TextWidth(label)/2, int(y)+5, r.colors.TextColor)
}

func (r *GridRenderer) cellOrigin(c gridmap.Coord) (float32, float32) {
	layout := r.grid.Layout()
	return float32(layout.OffsetX + float64(c.X)*layout.TileSize),
		float32(layout.OffsetY + float64(c.Y)*layout.TileSize)
}
