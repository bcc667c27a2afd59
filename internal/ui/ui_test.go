package ui

import (
	"testing"

	"go-maze-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toRoman(tt.in), "toRoman(%d)", tt.in)
	}
}

func TestWaveIndicator_Label(t *testing.T) {
	w := NewWaveIndicator(0, 0, panelSelected)
	assert.Equal(t, "Wave -/X", w.Label(0, 10))
	assert.Equal(t, "Wave III/X", w.Label(3, 10))
}

func TestSpeedButton_Cycle(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, nil, []float64{1, 2, 4})
	b.StateColors = append(b.StateColors, panelSelected)
	assert.Equal(t, 1.0, b.Multiplier())
	b.ToggleState()
	assert.Equal(t, 2.0, b.Multiplier())
	b.ToggleState()
	b.ToggleState()
	assert.Equal(t, 1.0, b.Multiplier())
}

func TestBuildPanel_SelectAndRows(t *testing.T) {
	p := NewBuildPanel(10, 100, defs.DefaultLibrary())
	assert.Equal(t, defs.TowerRifleman, p.Selected)

	assert.True(t, p.Select(2))
	assert.Equal(t, defs.TowerSniper, p.Selected)
	assert.False(t, p.Select(0))
	assert.False(t, p.Select(4))
	assert.Equal(t, defs.TowerSniper, p.Selected)

	kind, ok := p.RowAt(20, 100+2*panelRowHeight+1)
	assert.True(t, ok)
	assert.Equal(t, defs.TowerBarricade, kind)
	_, ok = p.RowAt(20, 100+3*panelRowHeight)
	assert.False(t, ok)
	_, ok = p.RowAt(5, 105)
	assert.False(t, ok)

	assert.Equal(t, "1 Rifleman   $50", p.Label(0, defs.TowerRifleman))
}

func TestCircleColor(t *testing.T) {
	assert.Equal(t, livesFullColor, circleColor(0, 15, 20))
	assert.Equal(t, livesLowColor, circleColor(0, 10, 20))
	assert.Equal(t, livesEmptyColor, circleColor(12, 10, 20))
}
