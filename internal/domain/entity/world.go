package entity

// Background holds the animated background layer frames
type Background struct {
	GrassFrame int
	SkyFrame   int
	GrassTicks int
	SkyTicks   int
}

// Advance ticks both layers. Grass cycles 2 frames, sky 4.
func (b *Background) Advance(grassPeriod, skyPeriod int) {
	b.GrassTicks++
	if grassPeriod > 0 && b.GrassTicks >= grassPeriod {
		b.GrassTicks = 0
		b.GrassFrame = (b.GrassFrame + 1) % 2
	}
	b.SkyTicks++
	if skyPeriod > 0 && b.SkyTicks >= skyPeriod {
		b.SkyTicks = 0
		b.SkyFrame = (b.SkyFrame + 1) % 4
	}
}

// World is the complete simulation state. It holds no I/O handles.
type World struct {
	Player        *Player
	Maps          []*Map
	CurrentMap    int
	GameOverTicks int
	Background    Background
	Cleared       bool // Walked off the last map
}

// NewWorld creates a world on the first map with the player at its spawn
func NewWorld(maps []*Map) *World {
	w := &World{Maps: maps}
	w.Player = NewPlayer(0, 0)
	w.Respawn()
	return w
}

// Map returns the current map
func (w *World) Map() *Map {
	return w.Maps[w.CurrentMap]
}

// Obstacles returns the current map's obstacles
func (w *World) Obstacles() *ObstacleStore {
	return w.Map().Obstacles
}

// IsLastMap reports whether the current map is the final one
func (w *World) IsLastMap() bool {
	return w.CurrentMap >= len(w.Maps)-1
}

// NextMap moves on to the following map. Reports false on the last map.
func (w *World) NextMap() bool {
	if w.IsLastMap() {
		return false
	}
	w.CurrentMap++
	return true
}

// Respawn resets the player at the current map's spawn point
func (w *World) Respawn() {
	m := w.Map()
	w.Player.Reset(m.SpawnX, m.SpawnY)
	w.GameOverTicks = 0
}
