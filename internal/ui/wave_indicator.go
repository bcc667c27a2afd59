package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-maze-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y  int
	Color color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: clr}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label returns the indicator text, e.g. "Wave III/V".
func (i *WaveIndicator) Label(current, total int) string {
	if current <= 0 {
		return fmt.Sprintf("Wave -/%s", toRoman(total))
	}
	return fmt.Sprintf("Wave %s/%s", toRoman(current), toRoman(total))
}

// Draw отрисовывает индикатор, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, current, total int) {
	text := i.Label(current, total)
	render.DrawText(screen, text, i.X-render.TextWidth(text)/2, i.Y, i.Color)
}
