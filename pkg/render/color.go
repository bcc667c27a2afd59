// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor   color.RGBA
	GridLineColor     color.RGBA
	PassableColor     color.RGBA
	DecorationColor   color.RGBA
	PathColor         color.RGBA
	EntryColor        color.RGBA
	ExitColor         color.RGBA
	ValidHoverColor   color.RGBA
	BlockedHoverColor color.RGBA
	TextColor         color.RGBA
	StrokeWidth       float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
