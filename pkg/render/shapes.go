// pkg/render/shapes.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the built-in bitmap face used for HUD text.
var DefaultFace font.Face = basicfont.Face7x13

// DrawCircle рисует круг с необязательной обводкой.
func DrawCircle(screen *ebiten.Image, x, y float64, radius float32, fill color.RGBA, stroke bool) {
	if stroke {
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius+2, DarkenColor(fill), true)
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), radius, fill, true)
}

// DrawRange draws a translucent range ring.
func DrawRange(screen *ebiten.Image, x, y float64, radius float32, clr color.Color) {
	vector.StrokeCircle(screen, float32(x), float32(y), radius, 1, clr, true)
}

// DrawHealthBar рисует полоску здоровья над сущностью. ratio в [0, 1].
func DrawHealthBar(screen *ebiten.Image, x, y float64, width float32, ratio float64, fg, bg color.RGBA) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	left := float32(x) - width/2
	top := float32(y)
	vector.DrawFilledRect(screen, left, top, width, 3, bg, false)
	vector.DrawFilledRect(screen, left, top, width*float32(ratio), 3, fg, false)
}

// DrawLine draws an instant-hit tracer.
func DrawLine(screen *ebiten.Image, x1, y1, x2, y2 float64, clr color.Color) {
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1.5, clr, true)
}

// DrawText draws s with its baseline at (x, y).
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, DefaultFace, x, y, clr)
}

// TextWidth returns the advance width of s in DefaultFace.
func TextWidth(s string) int {
	return font.MeasureString(DefaultFace, s).Ceil()
}
