// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры: меню, партия или пауза.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и переключает их с вызовом Exit/Enter.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState завершает текущий экран и входит в новый. nil оставляет машину пустой.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
