package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/boxkick/internal/domain/entity"
)

func TestRuleOrder(t *testing.T) {
	names := make([]string, 0, len(RuleOrder))
	for _, r := range RuleOrder {
		names = append(names, r.String())
	}

	assert.Equal(t, []string{
		"ApplyFriction",
		"JumpResolution",
		"ApplyGravity",
		"VerticalBounds",
		"HorizontalBounds",
		"CheckGameOver",
	}, names)
}

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name   string
		state  entity.PlayerState
		vy     float64
		wantVY float64
	}{
		{"in air accelerates", entity.StateInAir, 1, 1.5},
		{"in air caps fall speed", entity.StateInAir, 11.8, 12},
		{"on ground is untouched", entity.StateOnGround, 0, 0},
		{"on obstacle is untouched", entity.StateOnObstacle, -5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createTestWorld()
			e := NewEngine(createTestTuning())
			w.Player.SetState(tt.state)
			w.Player.VY = tt.vy

			e.Apply(ApplyGravity, w, InputState{})

			assert.InDelta(t, tt.wantVY, w.Player.VY, 1e-9)
		})
	}
}

func TestApplyFriction(t *testing.T) {
	t.Run("slows when no key is held", func(t *testing.T) {
		w := createTestWorld()
		e := NewEngine(createTestTuning())
		w.Player.X = 100
		w.Player.VX = 1

		e.Apply(ApplyFriction, w, InputState{})

		assert.InDelta(t, 0.8, w.Player.VX, 1e-9)
		assert.InDelta(t, 100.8, w.Player.X, 1e-9)
	})

	t.Run("keeps speed while a direction is held", func(t *testing.T) {
		w := createTestWorld()
		e := NewEngine(createTestTuning())
		w.Player.X = 100
		w.Player.VX = 1

		e.Apply(ApplyFriction, w, InputState{Right: true})

		assert.Equal(t, 1.0, w.Player.VX)
		assert.Equal(t, 101.0, w.Player.X)
	})

	t.Run("moves along the facing", func(t *testing.T) {
		w := createTestWorld()
		e := NewEngine(createTestTuning())
		w.Player.X = 100
		w.Player.VX = 2
		w.Player.Direction = entity.DirLeft

		e.Apply(ApplyFriction, w, InputState{Left: true})

		assert.Equal(t, 98.0, w.Player.X)
	})

	t.Run("never goes below zero", func(t *testing.T) {
		w := createTestWorld()
		e := NewEngine(createTestTuning())
		w.Player.VX = 0.1

		e.Apply(ApplyFriction, w, InputState{})

		assert.Equal(t, 0.0, w.Player.VX)
	})
}

func TestJumpResolution_InactiveObstacleIgnored(t *testing.T) {
	box := entity.NewObstacle(1, 80, 96, 176, 192, 2)
	box.Active = false
	w := createTestWorld(box)
	e := NewEngine(createTestTuning())
	p := w.Player
	p.X, p.Y = 75, 180
	p.SetState(entity.StateInAir)

	e.Apply(JumpResolution, w, InputState{})

	assert.Equal(t, entity.StateInAir, p.State)
	assert.Equal(t, 180.0, p.Y)
}

func TestJumpResolution_AboveObstacle(t *testing.T) {
	high := entity.NewObstacle(1, 80, 96, 190, 206, 2)
	low := entity.NewObstacle(2, 80, 96, 176, 192, 2)
	overhead := entity.NewObstacle(3, 80, 96, 150, 166, 2)

	tests := []struct {
		name         string
		obstacles    []entity.Obstacle
		y            float64
		prev         entity.PlayerState
		wantState    entity.PlayerState
		wantY        float64
		wantAbove    bool
		wantJumping  bool
		wantLand     bool
		wantLandMild bool
	}{
		{
			name:        "first match above stops the scan",
			obstacles:   []entity.Obstacle{high, low},
			y:           180,
			prev:        entity.StateInAir,
			wantState:   entity.StateInAir,
			wantY:       180,
			wantAbove:   true,
			wantJumping: true,
		},
		{
			name:      "first match holding the player lands",
			obstacles: []entity.Obstacle{low, high},
			y:         180,
			prev:      entity.StateInAir,
			wantState: entity.StateOnObstacle,
			wantY:     191,
			wantLand:  true,
		},
		{
			name:        "leaving the ground under a higher box",
			obstacles:   []entity.Obstacle{high},
			y:           180,
			prev:        entity.StateOnGround,
			wantState:   entity.StateInAir,
			wantY:       180,
			wantAbove:   true,
			wantJumping: true,
		},
		{
			name:      "standing under a box stays grounded",
			obstacles: []entity.Obstacle{overhead},
			y:         205,
			prev:      entity.StateOnGround,
			wantState: entity.StateOnGround,
			wantY:     205,
		},
		{
			name:         "falling onto the ground",
			obstacles:    []entity.Obstacle{overhead},
			y:            205,
			prev:         entity.StateInAir,
			wantState:    entity.StateOnGround,
			wantY:        205,
			wantLandMild: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createTestWorld(tt.obstacles...)
			e := NewEngine(createTestTuning())
			p := w.Player
			p.X, p.Y = 75, tt.y
			p.SetState(tt.prev)

			e.Apply(JumpResolution, w, InputState{})

			assert.Equal(t, tt.wantState, p.State)
			assert.Equal(t, tt.wantY, p.Y)
			assert.Equal(t, tt.wantAbove, p.AboveObstacle)
			assert.Equal(t, tt.wantJumping, p.IsJumping)
			assert.Equal(t, tt.wantLand, HasEvent(e.events, EventLand))
			assert.Equal(t, tt.wantLandMild, HasEvent(e.events, EventLandMild))
		})
	}
}

func TestJumpResolution_AlmostGround(t *testing.T) {
	w := createTestWorld()
	e := NewEngine(createTestTuning())
	p := w.Player
	p.Y = 150
	p.SetState(entity.StateInAir)

	e.Apply(JumpResolution, w, InputState{})

	assert.True(t, p.AlmostGround)

	p.Y = 170
	e.Apply(JumpResolution, w, InputState{})

	assert.False(t, p.AlmostGround)
}

func TestJumpResolution_SnapsToGround(t *testing.T) {
	w := createTestWorld()
	e := NewEngine(createTestTuning())
	p := w.Player
	p.Y = 203
	p.VY = 4
	p.IsJumping = true
	p.SetState(entity.StateInAir)

	e.Apply(JumpResolution, w, InputState{})

	assert.Equal(t, 205.0, p.Y)
	assert.Equal(t, 0.0, p.VY)
	assert.False(t, p.IsJumping)
	assert.True(t, p.OnGround)
	assert.False(t, p.OnObstacle)
}

func TestVerticalBounds(t *testing.T) {
	w := createTestWorld()
	e := NewEngine(createTestTuning())
	p := w.Player
	p.Y = 30
	p.VY = -3
	p.SetState(entity.StateInAir)

	e.Apply(VerticalBounds, w, InputState{})

	assert.Equal(t, 205.0, p.Y)
	assert.Equal(t, 0.0, p.VY)

	p.Y = 100
	e.Apply(VerticalBounds, w, InputState{})
	assert.Equal(t, 100.0, p.Y)
}

func TestHorizontalBounds(t *testing.T) {
	t.Run("clamps at the lower bound", func(t *testing.T) {
		w := createTestWorld()
		e := NewEngine(createTestTuning())
		w.Player.X = -3
		w.Player.VX = 1

		e.Apply(HorizontalBounds, w, InputState{})

		assert.Equal(t, 0.0, w.Player.X)
		assert.Equal(t, 0.0, w.Player.VX)
	})

	t.Run("moves to the next map once", func(t *testing.T) {
		w := entity.NewWorld([]*entity.Map{createTestMap(1), createTestMap(2)})
		e := NewEngine(createTestTuning())
		w.Player.X = 226

		e.Apply(HorizontalBounds, w, InputState{})
		events := e.events

		require.Equal(t, 1, w.CurrentMap)
		assert.Equal(t, 0.0, w.Player.X)
		assert.Equal(t, []Event{{Kind: EventMapChanged, Value: 1}}, events)

		e.events = nil
		e.Apply(HorizontalBounds, w, InputState{})
		assert.Equal(t, 1, w.CurrentMap)
		assert.Empty(t, e.events)
	})

	t.Run("clears on the last map", func(t *testing.T) {
		w := createTestWorld()
		e := NewEngine(createTestTuning())
		w.Player.X = 240

		e.Apply(HorizontalBounds, w, InputState{})

		assert.True(t, w.Cleared)
		assert.Equal(t, 225.0, w.Player.X)
		assert.True(t, HasEvent(e.events, EventCleared))
	})
}
