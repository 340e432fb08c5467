package entity

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

const (
	obstacleTag = "obstacle"
	probeTag    = "probe"

	// indexCell is the broadphase cell size in pixels
	indexCell = 16
	// indexMargin keeps boxes above row 0 or mid-fall inside the indexed space
	indexMargin = 2 * indexCell
)

// KickOutcome is the result of a kick landing on an obstacle
type KickOutcome int

const (
	KickDamaged KickOutcome = iota // Durability went down by one
	KickRemoved                    // Obstacle was removed and its stack set falling
)

// ObstacleStore is a map's ordered obstacle collection.
// A resolv space indexes the obstacles for footprint queries.
type ObstacleStore struct {
	obstacles []*Obstacle
	space     *resolv.Space
	objects   map[*Obstacle]*resolv.Object
	owners    map[*resolv.Object]*Obstacle
	width     int
	height    int
}

// NewObstacleStore creates a store for a map of the given pixel size.
// Obstacles keep the order given.
func NewObstacleStore(width, height int, obstacles []Obstacle) *ObstacleStore {
	for _, o := range obstacles {
		if r := int(math.Ceil(o.XRight)); r > width {
			width = r
		}
		if b := int(math.Ceil(o.YBottom)); b > height {
			height = b
		}
	}

	s := &ObstacleStore{
		obstacles: make([]*Obstacle, 0, len(obstacles)),
		space:     resolv.NewSpace(width+2*indexMargin, height+2*indexMargin, indexCell, indexCell),
		objects:   make(map[*Obstacle]*resolv.Object, len(obstacles)),
		owners:    make(map[*resolv.Object]*Obstacle, len(obstacles)),
		width:     width,
		height:    height,
	}
	for i := range obstacles {
		o := obstacles[i]
		s.add(&o)
	}
	return s
}

func (s *ObstacleStore) add(o *Obstacle) {
	obj := resolv.NewObject(o.XLeft+indexMargin, o.YTop+indexMargin, o.Width(), o.Height(), obstacleTag)
	obj.SetShape(resolv.NewRectangle(0, 0, o.Width(), o.Height()))
	s.space.Add(obj)
	s.obstacles = append(s.obstacles, o)
	s.objects[o] = obj
	s.owners[obj] = o
}

// Len returns the number of stored obstacles
func (s *ObstacleStore) Len() int {
	return len(s.obstacles)
}

// At returns the obstacle at index i in store order
func (s *ObstacleStore) At(i int) *Obstacle {
	return s.obstacles[i]
}

// All returns the obstacles in store order. Callers must not modify the slice.
func (s *ObstacleStore) All() []*Obstacle {
	return s.obstacles
}

// Active returns the obstacles that still take part in collisions, in store order
func (s *ObstacleStore) Active() []*Obstacle {
	active := make([]*Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		if o.Active {
			active = append(active, o)
		}
	}
	return active
}

// Snapshot returns a copy of every obstacle in store order
func (s *ObstacleStore) Snapshot() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	for i, o := range s.obstacles {
		out[i] = *o
	}
	return out
}

// Clone returns an independent copy of the store
func (s *ObstacleStore) Clone() *ObstacleStore {
	return NewObstacleStore(s.width, s.height, s.Snapshot())
}

// Hit applies one kick to the obstacle at index i
func (s *ObstacleStore) Hit(i int) KickOutcome {
	o := s.obstacles[i]
	if o.Durability > 0 {
		o.Durability--
		return KickDamaged
	}
	s.Remove(i)
	return KickRemoved
}

// Remove deletes the obstacle at index i. Every obstacle horizontally nested
// in its footprint starts falling first, the removed one included.
func (s *ObstacleStore) Remove(i int) []ObstacleID {
	removed := s.obstacles[i]

	var fallen []ObstacleID
	for _, o := range s.NestedWithin(removed) {
		o.StartFalling()
		fallen = append(fallen, o.ID)
	}

	removed.Active = false
	if obj, ok := s.objects[removed]; ok {
		s.space.Remove(obj)
		delete(s.objects, removed)
		delete(s.owners, obj)
	}
	s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)

	return fallen
}

// NestedWithin returns, in store order, the active obstacles whose horizontal
// extent lies inside footprint's, footprint itself included.
func (s *ObstacleStore) NestedWithin(footprint *Obstacle) []*Obstacle {
	probe := resolv.NewObject(footprint.XLeft+indexMargin, 0, footprint.Width(), float64(s.height+2*indexMargin), probeTag)
	s.space.Add(probe)
	check := probe.Check(0, 0, obstacleTag)
	s.space.Remove(probe)

	if check == nil {
		return nil
	}

	candidates := make(map[*Obstacle]bool)
	for _, obj := range check.ObjectsByTags(obstacleTag) {
		if o, ok := s.owners[obj]; ok {
			candidates[o] = true
		}
	}

	var nested []*Obstacle
	for _, o := range s.obstacles {
		if candidates[o] && o.Active && o.NestedWithin(footprint) {
			nested = append(nested, o)
		}
	}
	return nested
}

// StepFalling advances every falling obstacle by one tick. A falling obstacle
// stops once its velocity reaches landVelocity; otherwise it moves by step
// and gains step velocity. Reports whether any obstacle landed this tick.
func (s *ObstacleStore) StepFalling(step, landVelocity float64) bool {
	landed := false
	for _, o := range s.obstacles {
		o.Landed = false
		if !o.Falling {
			continue
		}
		if o.VelocityY >= landVelocity {
			o.Falling = false
			o.Landed = true
			landed = true
			continue
		}
		o.Translate(step)
		o.VelocityY += step
		s.reindex(o)
	}
	return landed
}

// AnyFalling reports whether an obstacle is still in free fall
func (s *ObstacleStore) AnyFalling() bool {
	for _, o := range s.obstacles {
		if o.Falling {
			return true
		}
	}
	return false
}

// SortByBottom restores ascending YBottom order. Equal keys keep their order.
func (s *ObstacleStore) SortByBottom() {
	sort.SliceStable(s.obstacles, func(i, j int) bool {
		return s.obstacles[i].YBottom < s.obstacles[j].YBottom
	})
}

func (s *ObstacleStore) reindex(o *Obstacle) {
	obj, ok := s.objects[o]
	if !ok {
		return
	}
	obj.Y = o.YTop + indexMargin
	obj.Update()
}
