package system

import (
	"github.com/younwookim/boxkick/internal/domain/entity"
	"github.com/younwookim/boxkick/internal/infrastructure/config"
)

// Engine steps the simulation one tick at a time. It owns no world state;
// the world is passed in by the frame loop that owns it.
type Engine struct {
	tuning    *config.Tuning
	events    []Event
	wasMoving bool
}

// NewEngine creates an engine with the given tuning
func NewEngine(t *config.Tuning) *Engine {
	return &Engine{tuning: t}
}

// Tuning returns the active tuning
func (e *Engine) Tuning() *config.Tuning {
	return e.tuning
}

// SetTuning swaps the tuning used from the next tick on
func (e *Engine) SetTuning(t *config.Tuning) {
	e.tuning = t
}

// Tick advances the world by one frame:
// held-key commands, then every rule in RuleOrder, then animation timers.
// While the player is in the game-over sequence only CheckGameOver runs.
// Returns the side effects produced during the tick.
func (e *Engine) Tick(w *entity.World, in InputState) []Event {
	e.events = nil
	if w.Cleared {
		return e.events
	}

	p := w.Player
	if !p.GameOver {
		for _, cmd := range in.Commands() {
			e.Dispatch(cmd, w)
		}
	}

	for _, r := range RuleOrder {
		if p.GameOver && r != CheckGameOver {
			continue
		}
		e.Apply(r, w, in)
	}

	e.animate(w)

	moving := in.AnyHeld()
	if e.wasMoving && !moving {
		e.emit(EventStopMovement, 0)
	}
	e.wasMoving = moving

	return e.events
}

func (e *Engine) animate(w *entity.World) {
	anim := e.tuning.Animation
	w.Player.AdvanceKick(anim.KickFrameTicks, anim.KickFrames)
	w.Background.Advance(anim.GrassTicks, anim.SkyTicks)
}

func (e *Engine) emit(kind EventKind, value int) {
	e.events = append(e.events, Event{Kind: kind, Value: value})
}
