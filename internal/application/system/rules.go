package system

import "github.com/younwookim/boxkick/internal/domain/entity"

// Rule is a global per-tick rule
type Rule int

const (
	ApplyFriction Rule = iota
	JumpResolution
	ApplyGravity
	VerticalBounds
	HorizontalBounds
	CheckGameOver
)

// RuleOrder is the order rules run in every tick. Horizontal motion comes
// first so vertical contact is resolved against the new x.
var RuleOrder = [...]Rule{
	ApplyFriction,
	JumpResolution,
	ApplyGravity,
	VerticalBounds,
	HorizontalBounds,
	CheckGameOver,
}

// String returns the string representation of the rule
func (r Rule) String() string {
	switch r {
	case ApplyFriction:
		return "ApplyFriction"
	case JumpResolution:
		return "JumpResolution"
	case ApplyGravity:
		return "ApplyGravity"
	case VerticalBounds:
		return "VerticalBounds"
	case HorizontalBounds:
		return "HorizontalBounds"
	case CheckGameOver:
		return "CheckGameOver"
	default:
		return "Unknown"
	}
}

// Apply runs a single rule against the world
func (e *Engine) Apply(r Rule, w *entity.World, in InputState) {
	switch r {
	case ApplyFriction:
		e.applyFriction(w.Player, in.Horizontal())
	case JumpResolution:
		e.resolveVertical(w)
	case ApplyGravity:
		e.applyGravity(w)
	case VerticalBounds:
		e.verticalBounds(w.Player)
	case HorizontalBounds:
		e.horizontalBounds(w)
	case CheckGameOver:
		e.checkGameOver(w)
	}
}

// applyFriction slows the player when no horizontal key is held, then moves
// it along its facing.
func (e *Engine) applyFriction(p *entity.Player, moving bool) {
	if !moving && p.VX > 0 {
		p.VX -= e.tuning.Physics.Friction
		if p.VX < 0 {
			p.VX = 0
		}
	}

	if p.FacingLeft() {
		p.X -= p.VX
	} else {
		p.X += p.VX
	}
}

// resolveVertical integrates a jump and settles the player's contact state
// against obstacles in store order, then against the ground.
func (e *Engine) resolveVertical(w *entity.World) {
	p := w.Player
	anim := e.tuning.Animation

	if p.IsJumping {
		p.Y += p.VY
	}
	p.AlmostGround = p.Y >= anim.AlmostGroundMin && p.Y <= anim.AlmostGroundMax

	prev := p.State
	for _, o := range w.Obstacles().All() {
		if !o.Active || !LandingOverlap(p, o, e.tuning.Collision) {
			continue
		}

		if p.Y >= o.YTop && p.Y <= o.YBottom {
			if p.State != entity.StateOnObstacle {
				p.Y = o.YBottom - 1
				p.VY = 0
				p.IsJumping = false
				p.AboveObstacle = false
				p.SetState(entity.StateOnObstacle)
				e.emit(EventLand, int(o.ID))
				return
			}
			p.SetState(entity.StateOnObstacle)
			return
		}

		if p.Y < o.YTop {
			p.AboveObstacle = true
			p.IsJumping = true
			p.SetState(entity.StateInAir)
			return
		}
	}

	p.AboveObstacle = false
	if p.Y >= e.tuning.Physics.Ground {
		p.Y = e.tuning.Physics.Ground
		p.VY = 0
		p.IsJumping = false
		p.SetState(entity.StateOnGround)
		if prev == entity.StateInAir {
			e.emit(EventLandMild, 0)
		}
		return
	}

	p.IsJumping = true
	p.SetState(entity.StateInAir)
}

// applyGravity accelerates an unsupported player and steps falling obstacles.
// The store is re-sorted by YBottom whenever an obstacle lands.
func (e *Engine) applyGravity(w *entity.World) {
	p := w.Player
	phys := e.tuning.Physics

	if !p.Supported() {
		p.VY += phys.Gravity
		if phys.MaxFallSpeed > 0 && p.VY > phys.MaxFallSpeed {
			p.VY = phys.MaxFallSpeed
		}
	}

	store := w.Obstacles()
	step := phys.Gravity * e.tuning.Obstacles.FallGravityScale
	if store.StepFalling(step, e.tuning.Obstacles.LandVelocity) {
		store.SortByBottom()
		e.emit(EventBoxLanded, 0)
	}
}

// verticalBounds drops a player that rose past the ceiling back to the ground line
func (e *Engine) verticalBounds(p *entity.Player) {
	phys := e.tuning.Physics
	if p.Y > phys.CeilingY {
		return
	}
	p.Y = phys.Ground
	p.VY = 0
	p.SetState(entity.StateInAir)
}

// horizontalBounds clamps x to the map and moves on to the next map when the
// player crosses its transition line.
func (e *Engine) horizontalBounds(w *entity.World) {
	p := w.Player
	phys := e.tuning.Physics

	if p.X < phys.LowerBound {
		p.X = phys.LowerBound
		p.VX = 0
		return
	}

	upper := w.Map().TransitionX
	if upper <= phys.LowerBound {
		upper = phys.UpperBound
	}
	if p.X < upper {
		return
	}

	p.VX = 0
	if w.NextMap() {
		p.X = phys.LowerBound
		e.emit(EventMapChanged, w.CurrentMap)
		return
	}

	p.X = upper
	if !w.Cleared {
		w.Cleared = true
		e.emit(EventCleared, w.CurrentMap)
	}
}

// checkGameOver starts the game-over sequence when the player stands on a
// spike, and respawns the player once the overlay frames have played.
func (e *Engine) checkGameOver(w *entity.World) {
	p := w.Player
	anim := e.tuning.Animation

	if !p.GameOver {
		footX := p.X + e.tuning.Collision.SpriteWidth/2
		if p.OnGround && w.Map().IsSpikeAt(footX, p.Y+entity.FootDrop) {
			p.GameOver = true
			p.VX = 0
			w.GameOverTicks = 0
			e.emit(EventGameOver, w.CurrentMap)
		}
		return
	}

	w.GameOverTicks++
	if w.GameOverTicks >= anim.GameOverFrames*anim.GameOverFrameTicks {
		w.Respawn()
		e.emit(EventRespawn, w.CurrentMap)
	}
}

// GameOverFrame returns the overlay frame to show during the game-over sequence
func (e *Engine) GameOverFrame(w *entity.World) int {
	anim := e.tuning.Animation
	if anim.GameOverFrameTicks <= 0 {
		return 0
	}
	frame := w.GameOverTicks / anim.GameOverFrameTicks
	if frame >= anim.GameOverFrames {
		frame = anim.GameOverFrames - 1
	}
	return frame
}
