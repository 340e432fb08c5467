package entity

// TileType represents the type of a tile
type TileType int

const (
	TileSky TileType = iota
	TileGrass
	TileBox
	TileSpike
	TileUnknown
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileSky:
		return "Sky"
	case TileGrass:
		return "Grass"
	case TileBox:
		return "Box"
	case TileSpike:
		return "Spike"
	default:
		return "Unknown"
	}
}

// Tile represents a single grid cell of a map
type Tile struct {
	Type   TileType
	Symbol string
}

// Map is one screen of the level: its tile grid and the obstacles it owns.
// Only the obstacle collection changes after load.
type Map struct {
	ID          int
	Name        string
	Cols        int
	Rows        int
	TileSize    int
	Tiles       [][]Tile
	Obstacles   *ObstacleStore
	SpawnX      float64
	SpawnY      float64
	TransitionX float64 // Crossing this x moves on to the next map
}

// Width returns the map width in pixels
func (m *Map) Width() int {
	return m.Cols * m.TileSize
}

// Height returns the map height in pixels
func (m *Map) Height() int {
	return m.Rows * m.TileSize
}

// GetTile returns the tile at the given tile coordinates.
// Cells outside the grid read as sky.
func (m *Map) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= m.Cols || ty < 0 || ty >= m.Rows || tx >= len(m.Tiles[ty]) {
		return Tile{Type: TileSky}
	}
	return m.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (m *Map) GetTileAtPixel(px, py float64) Tile {
	if px < 0 || py < 0 {
		return Tile{Type: TileSky}
	}
	return m.GetTile(int(px)/m.TileSize, int(py)/m.TileSize)
}

// IsSpikeAt checks if the tile at pixel coordinates is a spike
func (m *Map) IsSpikeAt(px, py float64) bool {
	return m.GetTileAtPixel(px, py).Type == TileSpike
}

// Clone returns a copy with a fresh obstacle collection. The tile grid is shared.
func (m *Map) Clone() *Map {
	c := *m
	c.Obstacles = m.Obstacles.Clone()
	return &c
}
