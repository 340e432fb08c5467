package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputState holds the logical keys held during one tick
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Kick  bool
	Exit  bool // Escape or window close
}

// Horizontal reports whether a movement key is held
func (s InputState) Horizontal() bool {
	return s.Left || s.Right
}

// AnyHeld reports whether any gameplay key is held
func (s InputState) AnyHeld() bool {
	return s.Left || s.Right || s.Jump || s.Kick
}

// Commands returns one command per held key, in dispatch order
func (s InputState) Commands() []Command {
	cmds := make([]Command, 0, 4)
	if s.Left {
		cmds = append(cmds, MoveLeft)
	}
	if s.Right {
		cmds = append(cmds, MoveRight)
	}
	if s.Jump {
		cmds = append(cmds, Jump)
	}
	if s.Kick {
		cmds = append(cmds, Kick)
	}
	return cmds
}

// InputSource is polled once per tick
type InputSource interface {
	Poll() InputState
}

// KeyBindings lists the physical keys for each logical key
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
	Kick  []ebiten.Key
	Exit  []ebiten.Key
}

// DefaultKeyBindings returns the standard keyboard layout
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		Kick:  []ebiten.Key{ebiten.KeyX, ebiten.KeyJ},
		Exit:  []ebiten.Key{ebiten.KeyEscape},
	}
}

// KeyboardInput reads held keys from ebiten
type KeyboardInput struct {
	bindings KeyBindings
}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput(bindings KeyBindings) *KeyboardInput {
	return &KeyboardInput{bindings: bindings}
}

// Poll reads the current input state
func (k *KeyboardInput) Poll() InputState {
	return InputState{
		Left:  anyPressed(k.bindings.Left),
		Right: anyPressed(k.bindings.Right),
		Jump:  anyPressed(k.bindings.Jump),
		Kick:  anyPressed(k.bindings.Kick),
		Exit:  anyPressed(k.bindings.Exit) || ebiten.IsWindowBeingClosed(),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
