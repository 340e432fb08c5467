package system

import (
	"testing"

	"github.com/younwookim/boxkick/internal/domain/entity"
)

// createBenchStack builds columns of stacked boxes across the map
func createBenchStack(columns, height int) []entity.Obstacle {
	var obstacles []entity.Obstacle
	id := entity.ObstacleID(1)
	for c := 0; c < columns; c++ {
		x := float64(32 + c*16)
		for h := 0; h < height; h++ {
			bottom := 192 - float64(h*16)
			obstacles = append(obstacles, entity.NewObstacle(id, x, x+16, bottom-16, bottom, 2))
			id++
		}
	}
	return obstacles
}

// Case 1: walking and jumping over an empty map

func BenchmarkTick_Walk(b *testing.B) {
	e := NewEngine(createTestTuning())
	w := createTestWorld()
	in := InputState{Right: true}

	for n := 0; n < b.N; n++ {
		if w.Player.X > 200 {
			w.Player.X = 0
		}
		in.Jump = n%40 == 0
		e.Tick(w, in)
	}
}

// Case 2: many obstacles, every tick checks contact against all of them

func BenchmarkTick_Crowded(b *testing.B) {
	e := NewEngine(createTestTuning())
	w := createTestWorld(createBenchStack(10, 4)...)
	in := InputState{Left: true}

	for n := 0; n < b.N; n++ {
		e.Tick(w, in)
	}
}

// Case 3: removal cascade through the broadphase

func BenchmarkObstacleStore_RemoveCascade(b *testing.B) {
	proto := entity.NewObstacleStore(256, 224, createBenchStack(10, 4))

	for n := 0; n < b.N; n++ {
		store := proto.Clone()
		for store.Len() > 0 {
			store.Remove(0)
		}
	}
}
