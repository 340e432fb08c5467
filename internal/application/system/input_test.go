package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestInputState_Commands(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		want []Command
	}{
		{"nothing held", InputState{}, []Command{}},
		{"exit only", InputState{Exit: true}, []Command{}},
		{"every key", InputState{Left: true, Right: true, Jump: true, Kick: true}, []Command{MoveLeft, MoveRight, Jump, Kick}},
		{"jump and kick", InputState{Kick: true, Jump: true}, []Command{Jump, Kick}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Commands())
		})
	}
}

func TestInputState_Held(t *testing.T) {
	assert.False(t, InputState{}.AnyHeld())
	assert.False(t, InputState{Exit: true}.AnyHeld())
	assert.True(t, InputState{Kick: true}.AnyHeld())
	assert.False(t, InputState{Jump: true}.Horizontal())
	assert.True(t, InputState{Left: true}.Horizontal())
}

func TestDefaultKeyBindings(t *testing.T) {
	b := DefaultKeyBindings()

	assert.Contains(t, b.Left, ebiten.KeyArrowLeft)
	assert.Contains(t, b.Right, ebiten.KeyArrowRight)
	assert.Contains(t, b.Jump, ebiten.KeySpace)
	assert.Contains(t, b.Kick, ebiten.KeyX)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, b.Exit)
}
