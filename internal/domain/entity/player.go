package entity

// PlayerState is the player's vertical contact state
type PlayerState int

const (
	StateOnGround PlayerState = iota
	StateInAir
	StateOnObstacle
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case StateOnGround:
		return "OnGround"
	case StateInAir:
		return "InAir"
	case StateOnObstacle:
		return "OnObstacle"
	default:
		return "Unknown"
	}
}

// Direction is the way the player faces
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == DirLeft {
		return "Left"
	}
	return "Right"
}

// Walk frame ranges in the player sprite sequence
const (
	RightFirstFrame = 0
	RightLastFrame  = 3
	LeftFirstFrame  = 4
	LeftLastFrame   = 7
)

// FootstepCount is the length of the footstep sound cycle
const FootstepCount = 4

// Player is the single controllable character.
// X is the sprite's left edge and Y its feet, y grows downward.
type Player struct {
	X, Y   float64
	VX, VY float64 // VX is a speed; Direction gives its sign

	State        PlayerState
	AlmostGround bool // Feet within the early landing pose band
	Direction    Direction

	// Walk animation
	LeftIncrement   int
	RightIncrement  int
	LeftFrameCount  int
	RightFrameCount int
	FootstepIndex   int

	// Actions
	IsJumping bool
	IsKicking bool
	KickFrame int
	KickTimer int

	// Contacts
	OnGround      bool
	OnObstacle    bool
	AboveObstacle bool
	ObstacleLeft  bool
	ObstacleRight bool

	GameOver bool
}

// NewPlayer creates a player standing at (x, y) facing right
func NewPlayer(x, y float64) *Player {
	p := &Player{}
	p.Reset(x, y)
	return p
}

// Reset puts the player back into its initial state at (x, y)
func (p *Player) Reset(x, y float64) {
	*p = Player{
		X:              x,
		Y:              y,
		Direction:      DirRight,
		LeftIncrement:  LeftFirstFrame,
		RightIncrement: RightFirstFrame,
	}
	p.SetState(StateOnGround)
}

// SetState changes the contact state and keeps the contact flags in agreement
func (p *Player) SetState(s PlayerState) {
	p.State = s
	p.OnGround = s == StateOnGround
	p.OnObstacle = s == StateOnObstacle
}

// FacingLeft reports whether the player faces left
func (p *Player) FacingLeft() bool {
	return p.Direction == DirLeft
}

// Supported reports whether the ground or an obstacle holds the player up
func (p *Player) Supported() bool {
	return p.OnGround || p.OnObstacle
}

// AdvanceWalk ticks the walk animation for dir. The frame moves on every
// ticksPerFrame calls and wraps inside the direction's range. Reports
// whether the frame moved.
func (p *Player) AdvanceWalk(dir Direction, ticksPerFrame int) bool {
	if dir == DirLeft {
		p.LeftFrameCount++
		if p.LeftFrameCount < ticksPerFrame {
			return false
		}
		p.LeftFrameCount = 0
		p.LeftIncrement++
		if p.LeftIncrement > LeftLastFrame {
			p.LeftIncrement = LeftFirstFrame
		}
		return true
	}

	p.RightFrameCount++
	if p.RightFrameCount < ticksPerFrame {
		return false
	}
	p.RightFrameCount = 0
	p.RightIncrement++
	if p.RightIncrement > RightLastFrame {
		p.RightIncrement = RightFirstFrame
	}
	return true
}

// NextFootstep returns the current footstep index and moves the cycle on
func (p *Player) NextFootstep() int {
	step := p.FootstepIndex
	p.FootstepIndex = (p.FootstepIndex + 1) % FootstepCount
	return step
}

// StartKick restarts the kick animation
func (p *Player) StartKick() {
	p.IsKicking = true
	p.KickFrame = 0
	p.KickTimer = 0
}

// AdvanceKick ticks the kick animation. Each frame lasts frameTicks ticks and
// the kick ends after frames frames.
func (p *Player) AdvanceKick(frameTicks, frames int) {
	if !p.IsKicking {
		return
	}
	p.KickTimer++
	if p.KickTimer < frameTicks {
		return
	}
	p.KickTimer = 0
	p.KickFrame++
	if p.KickFrame >= frames {
		p.IsKicking = false
		p.KickFrame = 0
	}
}

// FootDrop is how far below Y the bottom of a player sprite is drawn
const FootDrop = 3
