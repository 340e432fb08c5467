package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/boxkick/internal/domain/entity"
	"github.com/younwookim/boxkick/internal/infrastructure/config"
)

func createTestCollisionConfig() config.CollisionConfig {
	return config.Default().Collision
}

func TestCheckCollision(t *testing.T) {
	cfg := createTestCollisionConfig()
	box := entity.NewObstacle(1, 70.5, 98, 175, 185, 2)

	tests := []struct {
		name       string
		x, y       float64
		facingLeft bool
		wantHit    bool
	}{
		{"facing right in front of box", 56, 205, false, true},
		{"facing right short of box", 55, 205, false, false},
		{"facing right past box", 83, 205, false, false},
		{"facing left inside right edge", 88, 205, true, true},
		{"facing left clear of right edge", 89, 205, true, false},
		{"above vertical band", 56, 199, false, false},
		{"bottom of vertical band", 56, 210, false, true},
		{"below vertical band", 56, 211, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := box
			p := entity.NewPlayer(tt.x, tt.y)

			hit, idx := CheckCollision([]*entity.Obstacle{&o}, p, tt.facingLeft, cfg)

			assert.Equal(t, tt.wantHit, hit)
			if tt.wantHit {
				assert.Equal(t, 0, idx)
			} else {
				assert.Equal(t, -1, idx)
			}
		})
	}
}

func TestCheckCollision_SkipsInactive(t *testing.T) {
	cfg := createTestCollisionConfig()
	inactive := entity.NewObstacle(1, 70.5, 98, 175, 185, 2)
	inactive.Active = false
	p := entity.NewPlayer(60, 205)

	hit, idx := CheckCollision([]*entity.Obstacle{&inactive}, p, false, cfg)

	assert.False(t, hit)
	assert.Equal(t, -1, idx)
}

func TestCheckCollision_FirstMatchInStoreOrder(t *testing.T) {
	cfg := createTestCollisionConfig()
	inactive := entity.NewObstacle(1, 70.5, 98, 175, 185, 2)
	inactive.Active = false
	first := entity.NewObstacle(2, 70.5, 98, 176, 186, 2)
	second := entity.NewObstacle(3, 60, 98, 175, 185, 2)
	p := entity.NewPlayer(60, 205)

	hit, idx := CheckCollision([]*entity.Obstacle{&inactive, &first, &second}, p, false, cfg)

	assert.True(t, hit)
	assert.Equal(t, 1, idx)
}

func TestLandingOverlap(t *testing.T) {
	cfg := createTestCollisionConfig()
	box := entity.NewObstacle(1, 80, 96, 176, 192, 2)

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"lead pad just touches", 70.5, true},
		{"lead pad short", 70, false},
		{"trail pad still inside", 90.5, true},
		{"trail pad past right edge", 91, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewPlayer(tt.x, 180)
			assert.Equal(t, tt.want, LandingOverlap(p, &box, cfg))
		})
	}
}
