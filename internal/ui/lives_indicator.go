// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-maze-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 4.0
	LivesCircleSpacing = 2.0
)

var (
	livesFullColor  = color.RGBA{70, 130, 220, 255}
	livesLowColor   = color.RGBA{220, 60, 60, 255}
	livesEmptyColor = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// circleColor: до половины жизней все кружки красные, иначе синие.
func circleColor(j, lives, maxLives int) color.RGBA {
	if j >= lives {
		return livesEmptyColor
	}
	if lives <= maxLives/2 {
		return livesLowColor
	}
	return livesFullColor
}

// Draw рисует индикатор жизней.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		x := i.X + float32(col)*step + LivesCircleRadius
		y := i.Y + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, x, y, LivesCircleRadius, circleColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, x, y, LivesCircleRadius, 1, color.White, true)
	}
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	render.DrawText(screen, label, int(i.X+float32(LivesCols)*step)+6, int(i.Y)+10, color.White)
}
