package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWorld(n int) *World {
	maps := make([]*Map, n)
	for i := range maps {
		m := createTestMap()
		m.ID = i + 1
		maps[i] = m
	}
	return NewWorld(maps)
}

func TestNewWorld(t *testing.T) {
	w := createTestWorld(2)

	require.NotNil(t, w.Player)
	assert.Equal(t, 0, w.CurrentMap)
	assert.Equal(t, 0.0, w.Player.X)
	assert.Equal(t, 40.0, w.Player.Y)
	assert.False(t, w.Cleared)
	assert.Same(t, w.Maps[0].Obstacles, w.Obstacles())
}

func TestWorld_NextMap(t *testing.T) {
	w := createTestWorld(2)

	assert.False(t, w.IsLastMap())
	assert.True(t, w.NextMap())
	assert.Equal(t, 1, w.CurrentMap)
	assert.True(t, w.IsLastMap())
	assert.False(t, w.NextMap())
	assert.Equal(t, 1, w.CurrentMap)
}

func TestWorld_Respawn(t *testing.T) {
	w := createTestWorld(2)
	w.NextMap()
	w.Maps[1].SpawnX = 8
	w.Player.X = 100
	w.Player.GameOver = true
	w.GameOverTicks = 30

	w.Respawn()

	assert.Equal(t, 8.0, w.Player.X)
	assert.False(t, w.Player.GameOver)
	assert.Equal(t, 0, w.GameOverTicks)
}

func TestBackground_Advance(t *testing.T) {
	var b Background

	for i := 0; i < 120; i++ {
		b.Advance(60, 120)
	}
	assert.Equal(t, 0, b.GrassFrame)
	assert.Equal(t, 1, b.SkyFrame)

	for i := 0; i < 60; i++ {
		b.Advance(60, 120)
	}
	assert.Equal(t, 1, b.GrassFrame)
	assert.Equal(t, 1, b.SkyFrame)
}
