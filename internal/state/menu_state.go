// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-maze-defense/internal/config"
	"go-maze-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка перед партией, запускается при DEADEND_START_PAUSED.
type MenuState struct {
	sm    *StateMachine
	start func() State
}

func NewMenuState(sm *StateMachine, start func() State) *MenuState {
	return &MenuState{sm: sm, start: start}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.start())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Чёрный экран
	lines := []string{
		"DEAD END",
		"",
		"1/2/3 pick a tower, left click builds, right click or X removes",
		"SPACE starts the next wave, P pauses, F6 saves a snapshot, Ctrl+Q quits",
		"",
		"press SPACE",
	}
	y := config.ScreenHeight/2 - len(lines)*9
	for _, line := range lines {
		render.DrawText(screen, line, (config.ScreenWidth-render.TextWidth(line))/2, y, config.TextLightColor)
		y += 18
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
