package component

// GameState — фаза игры
type GameState int

const (
	BuildState GameState = iota
	WaveState
	GameOverState
	VictoryState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case GameOverState:
		return "game_over"
	case VictoryState:
		return "victory"
	default:
		return "unknown"
	}
}

// Finished reports whether the game has ended.
func (s GameState) Finished() bool {
	return s == GameOverState || s == VictoryState
}
