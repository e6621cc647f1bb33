package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOrbitClamps(t *testing.T) {
	c := New(rl.Vector3{})

	c.Orbit(0, 100, 0)
	assert.Equal(t, float32(89), c.Pitch)
	c.Orbit(0, -200, 0)
	assert.Equal(t, float32(5), c.Pitch)

	c.Orbit(0, 0, 100)
	assert.Equal(t, c.MaxDistance, c.Distance)
	c.Orbit(0, 0, -100)
	assert.Equal(t, c.MinDistance, c.Distance)

	c.Orbit(45, 0, 0)
	assert.Equal(t, float32(-45), c.Yaw)
}

func TestPosition(t *testing.T) {
	c := New(rl.Vector3{Y: 1})
	c.Yaw = 0
	c.Pitch = 5
	c.Distance = 4

	p := c.Position()
	assert.Greater(t, p.X, float32(3.9))
	assert.InDelta(t, 0, p.Z, 1e-5)
	assert.Greater(t, p.Y, float32(1))

	rc := c.GetRaylibCamera()
	assert.Equal(t, c.Target, rc.Target)
	assert.Equal(t, p, rc.Position)
}
