package config

import "time"

// Tuning is the root config for tuning.yaml
type Tuning struct {
	Display   DisplayConfig                `yaml:"display"`
	Physics   PhysicsSettings              `yaml:"physics"`
	Collision CollisionConfig              `yaml:"collision"`
	Obstacles ObstacleConfig               `yaml:"obstacles"`
	Animation AnimationConfig              `yaml:"animation"`
	Audio     AudioConfig                  `yaml:"audio"`
	TileSize  int                          `yaml:"tile_size"`
	Tiles     map[string]TileMappingConfig `yaml:"tiles"`
	Maps      []string                     `yaml:"maps"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	Framerate    int `yaml:"framerate"`
}

// FrameDuration returns the target wall time of one tick
func (d DisplayConfig) FrameDuration() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

type PhysicsSettings struct {
	Gravity           float64 `yaml:"gravity"`
	JumpVelocity      float64 `yaml:"jump_velocity"`
	MaxVelocity       float64 `yaml:"max_velocity"`
	Acceleration      float64 `yaml:"acceleration"`
	AccelerationScale float64 `yaml:"acceleration_scale"`
	VelocityDecay     float64 `yaml:"velocity_decay"` // Multiplier applied below the cap
	Friction          float64 `yaml:"friction"`
	Ground            float64 `yaml:"ground"`
	CeilingY          float64 `yaml:"ceiling_y"`
	LowerBound        float64 `yaml:"lower_bound"`
	UpperBound        float64 `yaml:"upper_bound"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
}

// CollisionConfig holds the sprite-tuned offsets used by collision checks.
// They match the shipped 23px wide player frames.
type CollisionConfig struct {
	SpriteWidth    float64 `yaml:"sprite_width"`
	LeftDivisor    float64 `yaml:"left_divisor"`
	RightDivisor   float64 `yaml:"right_divisor"`
	VerticalOffset float64 `yaml:"vertical_offset"`
	LandLeadPad    float64 `yaml:"land_lead_pad"`
	LandTrailPad   float64 `yaml:"land_trail_pad"`
}

type ObstacleConfig struct {
	FallGravityScale  float64 `yaml:"fall_gravity_scale"`
	LandVelocity      float64 `yaml:"land_velocity"`
	DefaultDurability int     `yaml:"default_durability"`
}

type AnimationConfig struct {
	WalkFrameTicks     int     `yaml:"walk_frame_ticks"`
	KickFrameTicks     int     `yaml:"kick_frame_ticks"`
	KickFrames         int     `yaml:"kick_frames"`
	AlmostGroundMin    float64 `yaml:"almost_ground_min"`
	AlmostGroundMax    float64 `yaml:"almost_ground_max"`
	GameOverFrames     int     `yaml:"game_over_frames"`
	GameOverFrameTicks int     `yaml:"game_over_frame_ticks"`
	GrassTicks         int     `yaml:"grass_ticks"`
	SkyTicks           int     `yaml:"sky_ticks"`
}

type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// TileMappingConfig maps one grid symbol to a tile type
type TileMappingConfig struct {
	Type       string `yaml:"type"`
	Durability *int   `yaml:"durability,omitempty"` // Boxes only; nil uses the default
}

// Default returns the built-in tuning. Loaded YAML is layered on top of it.
func Default() *Tuning {
	weak := 0
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  256,
			ScreenHeight: 224,
			WindowWidth:  640,
			WindowHeight: 480,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:           0.5,
			JumpVelocity:      -5.0,
			MaxVelocity:       2.0,
			Acceleration:      0.5,
			AccelerationScale: 0.5,
			VelocityDecay:     0.98,
			Friction:          0.2,
			Ground:            205.0,
			CeilingY:          40.0,
			LowerBound:        0,
			UpperBound:        225,
			MaxFallSpeed:      12.0,
		},
		Collision: CollisionConfig{
			SpriteWidth:    23,
			LeftDivisor:    2.5,
			RightDivisor:   1.5,
			VerticalOffset: 25.0,
			LandLeadPad:    10,
			LandTrailPad:   5,
		},
		Obstacles: ObstacleConfig{
			FallGravityScale:  3,
			LandVelocity:      16.0,
			DefaultDurability: 2,
		},
		Animation: AnimationConfig{
			WalkFrameTicks:     3,
			KickFrameTicks:     8,
			KickFrames:         2,
			AlmostGroundMin:    140,
			AlmostGroundMax:    160,
			GameOverFrames:     4,
			GameOverFrameTicks: 12,
			GrassTicks:         60,
			SkyTicks:           120,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.6,
		},
		TileSize: 16,
		Tiles: map[string]TileMappingConfig{
			"B": {Type: "box"},
			"b": {Type: "box", Durability: &weak},
			"G": {Type: "grass"},
			"S": {Type: "sky"},
			".": {Type: "sky"},
			"^": {Type: "spike"},
		},
		Maps: []string{"map1.txt", "map2.txt", "map3.tmx"},
	}
}
