package entity

// ObstacleID identifies an obstacle within one map
type ObstacleID uint32

// Obstacle is an axis-aligned destructible box.
// y grows downward, so YTop < YBottom.
type Obstacle struct {
	ID         ObstacleID
	XLeft      float64
	XRight     float64
	YTop       float64
	YBottom    float64
	Active     bool
	Durability int
	Falling    bool
	Landed     bool // Set on the tick a fall stops
	VelocityY  float64
}

// NewObstacle creates an active, resting obstacle
func NewObstacle(id ObstacleID, xLeft, xRight, yTop, yBottom float64, durability int) Obstacle {
	return Obstacle{
		ID:         id,
		XLeft:      xLeft,
		XRight:     xRight,
		YTop:       yTop,
		YBottom:    yBottom,
		Active:     true,
		Durability: durability,
	}
}

// Width returns the horizontal extent
func (o *Obstacle) Width() float64 {
	return o.XRight - o.XLeft
}

// Height returns the vertical extent
func (o *Obstacle) Height() float64 {
	return o.YBottom - o.YTop
}

// NestedWithin reports whether o lies horizontally inside other's footprint
func (o *Obstacle) NestedWithin(other *Obstacle) bool {
	return o.XLeft >= other.XLeft && o.XRight <= other.XRight
}

// Translate moves the obstacle vertically
func (o *Obstacle) Translate(dy float64) {
	o.YTop += dy
	o.YBottom += dy
}

// StartFalling puts the obstacle into free fall from rest
func (o *Obstacle) StartFalling() {
	o.Falling = true
	o.Landed = false
	o.VelocityY = 0
}
