package system

import "github.com/younwookim/boxkick/internal/domain/entity"

// Command is a discrete player action issued once per tick per held key
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	Jump
	Kick
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Jump:
		return "Jump"
	case Kick:
		return "Kick"
	default:
		return "Unknown"
	}
}

// Dispatch applies one command to the world. Commands never fail; a command
// whose precondition does not hold does nothing.
func (e *Engine) Dispatch(cmd Command, w *entity.World) {
	switch cmd {
	case MoveLeft:
		e.move(w, entity.DirLeft)
	case MoveRight:
		e.move(w, entity.DirRight)
	case Jump:
		e.jump(w.Player)
	case Kick:
		e.kick(w)
	}
}

func (e *Engine) move(w *entity.World, dir entity.Direction) {
	p := w.Player
	phys := e.tuning.Physics

	blocked, _ := CheckCollision(w.Obstacles().All(), p, dir == entity.DirLeft, e.tuning.Collision)
	if dir == entity.DirLeft {
		p.ObstacleLeft = blocked
	} else {
		p.ObstacleRight = blocked
	}

	if blocked {
		// Pushing into a box neither turns nor walks the player
		p.VX = 0
		return
	}

	p.VX += phys.Acceleration * phys.AccelerationScale
	if p.VX > phys.MaxVelocity {
		p.VX = phys.MaxVelocity
	} else {
		p.VX *= phys.VelocityDecay
	}

	p.Direction = dir
	if p.AdvanceWalk(dir, e.tuning.Animation.WalkFrameTicks) && p.Supported() {
		e.emit(EventFootstep, p.NextFootstep())
	}
}

func (e *Engine) jump(p *entity.Player) {
	if p.IsJumping || !p.Supported() {
		return
	}

	// State is left alone: the next vertical pass settles it, so a takeoff
	// from an obstacle rises through its band without landing again.
	p.VY = e.tuning.Physics.JumpVelocity
	p.OnGround = false
	p.OnObstacle = false
	p.IsJumping = true
	e.emit(EventJump, 0)
}

func (e *Engine) kick(w *entity.World) {
	p := w.Player
	if p.IsKicking {
		return
	}
	p.StartKick()

	store := w.Obstacles()
	hit, idx := CheckCollision(store.All(), p, p.FacingLeft(), e.tuning.Collision)
	if !hit {
		e.emit(EventKickMiss, 0)
		return
	}

	id := int(store.At(idx).ID)
	e.emit(EventKickHit, id)
	if store.Hit(idx) == entity.KickRemoved {
		e.emit(EventBoxBreak, id)
	}
}
