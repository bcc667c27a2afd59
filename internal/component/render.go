// internal/component/render.go
package component

import "image/color"

// Renderable — как рисовать сущность: круг цвета Color, при StrokeWidth > 0 с обводкой.
type Renderable struct {
	Color       color.RGBA
	Radius      float32 // пиксели
	StrokeWidth float32
}

// Outlined reports whether the shape has a border.
func (r Renderable) Outlined() bool {
	return r.StrokeWidth > 0
}
