// internal/ui/build_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-maze-defense/internal/defs"
	"go-maze-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelRowHeight = 22
	panelWidth     = 200
	panelPadding   = 6
)

var (
	panelBackground = color.RGBA{30, 30, 40, 220}
	panelSelected   = color.RGBA{70, 130, 180, 200}
	panelDisabled   = color.RGBA{120, 120, 120, 255}
)

// BuildPanel — список башен с ценами; выбранная подсвечена.
type BuildPanel struct {
	X, Y     int
	library  *defs.Library
	Selected defs.TowerKind
}

func NewBuildPanel(x, y int, library *defs.Library) *BuildPanel {
	return &BuildPanel{
		X:        x,
		Y:        y,
		library:  library,
		Selected: defs.TowerKinds[0],
	}
}

// Select выбирает башню по номеру (с единицы), как на клавиатуре.
func (p *BuildPanel) Select(n int) bool {
	if n < 1 || n > len(defs.TowerKinds) {
		return false
	}
	p.Selected = defs.TowerKinds[n-1]
	return true
}

// RowAt returns the tower kind whose row contains the point.
func (p *BuildPanel) RowAt(x, y int) (defs.TowerKind, bool) {
	if x < p.X || x >= p.X+panelWidth || y < p.Y {
		return "", false
	}
	row := (y - p.Y) / panelRowHeight
	if row >= len(defs.TowerKinds) {
		return "", false
	}
	return defs.TowerKinds[row], true
}

// Contains reports whether the point is over the panel.
func (p *BuildPanel) Contains(x, y int) bool {
	_, ok := p.RowAt(x, y)
	return ok
}

// Label builds the row text for kind, e.g. "1 Rifleman  $50".
func (p *BuildPanel) Label(i int, kind defs.TowerKind) string {
	def, ok := p.library.Tower(kind)
	if !ok {
		return fmt.Sprintf("%d %s", i+1, kind)
	}
	return fmt.Sprintf("%d %-10s $%d", i+1, def.Name, def.Cost)
}

func (p *BuildPanel) Draw(screen *ebiten.Image, money int) {
	h := float32(panelRowHeight * len(defs.TowerKinds))
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), panelWidth, h, panelBackground, false)

	for i, kind := range defs.TowerKinds {
		y := p.Y + i*panelRowHeight
		if kind == p.Selected {
			vector.DrawFilledRect(screen, float32(p.X), float32(y), panelWidth, panelRowHeight, panelSelected, false)
		}
		def, _ := p.library.Tower(kind)
		vector.DrawFilledCircle(screen, float32(p.X+panelPadding+6), float32(y+panelRowHeight/2), 6, def.Visuals.Color, true)

		clr := color.Color(color.White)
		if money < def.Cost {
			clr = panelDisabled
		}
		render.DrawText(screen, p.Label(i, kind), p.X+panelPadding+18, y+panelRowHeight-7, clr)
	}
}
