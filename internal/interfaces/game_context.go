// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно от игры, без зависимости от пакета app.
type GameContext interface {
	ClearProjectiles()
}
