package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func createTestLevel() *Level {
	return &Level{
		Name: "test",
		Boxes: []Box{
			NewBox("ground", 0, -144, 200, 16),
			NewBox("wall", 180, 0, 20, 120),
			NewDeathPlane("pit", 0, -400, 1000, 10),
		},
		Spawn: mgl64.Vec3{0, 0, 0},
	}
}

func TestBox_Edges(t *testing.T) {
	b := NewBox("platform", 10, 50, 30, 10)

	assert.Equal(t, 60.0, b.Top())
	assert.Equal(t, 40.0, b.Bottom())
	assert.Equal(t, -20.0, b.Left())
	assert.Equal(t, 40.0, b.Right())
	assert.False(t, b.Lethal)
}

func TestNewDeathPlane(t *testing.T) {
	b := NewDeathPlane("pit", 0, -400, 1000, 10)

	assert.True(t, b.Lethal)
	assert.Equal(t, "pit", b.Name)
	assert.Equal(t, mgl64.Vec2{1000, 10}, b.HalfSize)
}

func TestLevel_Bounds(t *testing.T) {
	t.Run("covers every box", func(t *testing.T) {
		level := createTestLevel()

		minX, minY, maxX, maxY := level.Bounds()

		assert.Equal(t, -1000.0, minX)
		assert.Equal(t, -410.0, minY)
		assert.Equal(t, 1000.0, maxX)
		assert.Equal(t, 120.0, maxY)
	})

	t.Run("empty level", func(t *testing.T) {
		level := &Level{}

		minX, minY, maxX, maxY := level.Bounds()

		assert.Zero(t, minX)
		assert.Zero(t, minY)
		assert.Zero(t, maxX)
		assert.Zero(t, maxY)
	})
}

func TestLevel_LethalCount(t *testing.T) {
	assert.Equal(t, 1, createTestLevel().LethalCount())
	assert.Equal(t, 0, (&Level{}).LethalCount())
}
