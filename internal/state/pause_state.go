// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-maze-defense/internal/config"
	"go-maze-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущее состояние рисуется, но не обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.pauseButton.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		// При выходе из паузы нужно «отжать» кнопку в игровом состоянии
		s.previousState.pauseButton.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	textWidth := render.TextWidth(pauseText)
	render.DrawText(screen, pauseText, (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
