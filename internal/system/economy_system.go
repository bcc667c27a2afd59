// internal/system/economy_system.go
package system

import (
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/economy"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/log"
)

// EconomySystem переводит события боя в деньги и жизни.
// GameOver отправляется один раз, когда жизни впервые доходят до нуля.
type EconomySystem struct {
	economy         *economy.Economy
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	gameOverSent    bool
}

func NewEconomySystem(econ *economy.Economy, eventDispatcher *event.Dispatcher, logger *log.Logger) *EconomySystem {
	s := &EconomySystem{
		economy:         econ,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.EnemyReachedEnd, s)
	eventDispatcher.Subscribe(event.WaveComplete, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		data, _ := e.Data.(event.EnemyData)
		s.economy.EnemyKilled(data.Reward)
	case event.EnemyReachedEnd:
		if s.gameOverSent {
			return
		}
		s.economy.EnemyReachedEnd(config.DamagePerLeak)
		s.logger.Debugf("enemy leaked, lives left %d", s.economy.Lives)
		if s.economy.IsGameOver() {
			s.gameOverSent = true
			s.logger.Infof("game over after %d waves", s.economy.WavesCompleted)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
				WavesCompleted: s.economy.WavesCompleted,
				EnemiesKilled:  s.economy.EnemiesKilled,
			}})
		}
	case event.WaveComplete:
		bonus := s.economy.WaveCompleted()
		s.logger.Infof("wave bonus %d, money %d", bonus, s.economy.Money)
	}
}

// GameOver reports whether GameOver has already been dispatched.
func (s *EconomySystem) GameOver() bool {
	return s.gameOverSent
}

// Reset clears the one-shot GameOver latch. The ledger itself is reset by its owner.
func (s *EconomySystem) Reset() {
	s.gameOverSent = false
}
