package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StateGameOver, "GameOver"},
		{StateCleared, "Cleared"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		gameOver bool
		cleared  bool
		expected GameState
	}{
		{"playing", false, false, StatePlaying},
		{"game over", true, false, StateGameOver},
		{"cleared", false, true, StateCleared},
		{"cleared wins", true, true, StateCleared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Of(tt.gameOver, tt.cleared))
		})
	}
}
