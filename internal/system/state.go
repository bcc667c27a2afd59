// internal/system/state.go
package system

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/interfaces"
	"go-maze-defense/internal/log"
)

// StateSystem переключает фазу игры по событиям.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, logger *log.Logger) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveComplete, ss)
	eventDispatcher.Subscribe(event.AllWavesComplete, ss)
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		s.SwitchToWaveState()
	case event.WaveComplete:
		s.SwitchToBuildState()
	case event.AllWavesComplete:
		s.switchTo(component.VictoryState)
	case event.GameOver:
		s.switchTo(component.GameOverState)
		s.gameContext.ClearProjectiles()
	}
}

// SwitchToBuildState возвращает в фазу постройки, если партия не закончена.
func (s *StateSystem) SwitchToBuildState() {
	s.switchTo(component.BuildState)
}

func (s *StateSystem) SwitchToWaveState() {
	s.switchTo(component.WaveState)
}

func (s *StateSystem) switchTo(next component.GameState) {
	// Из финальных состояний выхода нет, только через Reset
	if s.ecs.GameState.Finished() || s.ecs.GameState == next {
		return
	}
	s.logger.Debugf("state %s -> %s", s.ecs.GameState, next)
	s.ecs.GameState = next
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
