package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestMap() *Map {
	// 3x3 map with a spike on the bottom row
	tiles := [][]Tile{
		{{Type: TileSky}, {Type: TileBox}, {Type: TileSky}},
		{{Type: TileSky}, {Type: TileSky}, {Type: TileSky}},
		{{Type: TileGrass}, {Type: TileSpike}, {Type: TileGrass}},
	}

	return &Map{
		ID:        1,
		Cols:      3,
		Rows:      3,
		TileSize:  16,
		Tiles:     tiles,
		Obstacles: NewObstacleStore(48, 48, []Obstacle{NewObstacle(1, 16, 32, -16, 0, 2)}),
		SpawnX:    0,
		SpawnY:    40,
	}
}

func TestMap_GetTile(t *testing.T) {
	m := createTestMap()

	tests := []struct {
		name     string
		tx, ty   int
		wantType TileType
	}{
		{"top-center box", 1, 0, TileBox},
		{"center sky", 1, 1, TileSky},
		{"bottom-left grass", 0, 2, TileGrass},
		{"bottom-center spike", 1, 2, TileSpike},
		{"negative x", -1, 0, TileSky},
		{"negative y", 0, -1, TileSky},
		{"x too large", 10, 0, TileSky},
		{"y too large", 0, 10, TileSky},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, m.GetTile(tt.tx, tt.ty).Type)
		})
	}
}

func TestMap_GetTileAtPixel(t *testing.T) {
	m := createTestMap()

	tests := []struct {
		name     string
		px, py   float64
		wantType TileType
	}{
		{"first pixel of box", 16, 0, TileBox},
		{"last pixel of box", 31.9, 15.9, TileBox},
		{"spike", 20, 40, TileSpike},
		{"negative pixel", -0.5, 40, TileSky},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, m.GetTileAtPixel(tt.px, tt.py).Type)
		})
	}
}

func TestMap_IsSpikeAt(t *testing.T) {
	m := createTestMap()

	assert.True(t, m.IsSpikeAt(24, 36))
	assert.False(t, m.IsSpikeAt(8, 36))
	assert.False(t, m.IsSpikeAt(24, 20))
}

func TestMap_Dimensions(t *testing.T) {
	m := createTestMap()

	assert.Equal(t, 48, m.Width())
	assert.Equal(t, 48, m.Height())
}

func TestMap_Clone(t *testing.T) {
	m := createTestMap()

	c := m.Clone()
	c.Obstacles.At(0).Durability = 0

	assert.Equal(t, 2, m.Obstacles.At(0).Durability)
	assert.Equal(t, m.Name, c.Name)
	assert.Equal(t, TileSpike, c.GetTile(1, 2).Type)
}

func TestTileType_String(t *testing.T) {
	assert.Equal(t, "Sky", TileSky.String())
	assert.Equal(t, "Grass", TileGrass.String())
	assert.Equal(t, "Box", TileBox.String())
	assert.Equal(t, "Spike", TileSpike.String())
	assert.Equal(t, "Unknown", TileUnknown.String())
}
