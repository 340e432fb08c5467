package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
	StateCleared
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// Of derives the state from the world's flags. Cleared wins over game over.
func Of(gameOver, cleared bool) GameState {
	switch {
	case cleared:
		return StateCleared
	case gameOver:
		return StateGameOver
	default:
		return StatePlaying
	}
}
