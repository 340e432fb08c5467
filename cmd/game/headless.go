package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/boxkick/internal/application/game"
	"github.com/younwookim/boxkick/internal/application/scene"
	"github.com/younwookim/boxkick/internal/application/scene/playing"
)

// headlessResult summarises a run without a window
type headlessResult struct {
	Ticks   int
	Map     int
	Cleared bool
	X, Y    float64
}

func (r headlessResult) String() string {
	return fmt.Sprintf("%d ticks, map %d, cleared=%t, player at (%.2f, %.2f)", r.Ticks, r.Map+1, r.Cleared, r.X, r.Y)
}

// runHeadless drives the scene at a fixed cadence until its input asks to
// exit. Every tick is rendered into the framebuffer as in a windowed run.
func runHeadless(p *playing.Playing, frame time.Duration, pad bool) (headlessResult, error) {
	var runErr error
	dt := frame.Seconds()

	p.OnEnter()
	ticks := game.RunFixed(func() bool {
		if err := p.Advance(dt); err != nil {
			if !errors.Is(err, scene.ErrQuit) {
				runErr = err
			}
			return false
		}
		p.Render()
		return true
	}, frame, pad)
	p.OnExit()

	w := p.World()
	return headlessResult{
		Ticks:   ticks,
		Map:     w.CurrentMap,
		Cleared: w.Cleared,
		X:       w.Player.X,
		Y:       w.Player.Y,
	}, runErr
}
