package physics

import (
	"testing"

	"dicebox/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastHitsCubeBeforeFloor(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(cubeDef(t, rl.Vector3{Y: 0.3}, rl.QuaternionIdentity()))

	hit, ok := w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 100)
	require.True(t, ok)
	assert.Same(t, b, hit.Body)
	assert.InDelta(t, 4.4, hit.Distance, 1e-3)
	assert.InDelta(t, 0.6, hit.Point.Y, 1e-3)
	assert.InDelta(t, 1.0, hit.Normal.Y, 1e-3)
}

func TestRaycastHitsFloor(t *testing.T) {
	w := newTestWorld()
	w.AddBody(cubeDef(t, rl.Vector3{Y: 0.3}, rl.QuaternionIdentity()))

	hit, ok := w.Raycast(rl.Vector3{X: 1.5, Y: 5}, rl.Vector3{Y: -1}, 100)
	require.True(t, ok)
	assert.Nil(t, hit.Body)
	assert.InDelta(t, 5.0, hit.Distance, 1e-3)
}

func TestRaycastSphereBody(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(BodyDef{Position: rl.Vector3{X: 1, Y: 1, Z: 1}, Collider: geometry.SphereCollider(0.25)})

	hit, ok := w.Raycast(rl.Vector3{X: 1, Y: 5, Z: 1}, rl.Vector3{Y: -2}, 100)
	require.True(t, ok)
	assert.Same(t, b, hit.Body)
	assert.InDelta(t, 3.75, hit.Distance, 1e-3)
}

func TestRaycastMiss(t *testing.T) {
	w := newTestWorld()
	w.AddBody(cubeDef(t, rl.Vector3{Y: 0.3}, rl.QuaternionIdentity()))

	_, ok := w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: 1}, 100)
	assert.False(t, ok)

	_, ok = w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 2)
	assert.False(t, ok, "hit beyond max distance")
}

func TestRaycastFromInsideHullSkipsIt(t *testing.T) {
	w := newTestWorld()
	w.AddBody(cubeDef(t, rl.Vector3{Y: 0.3}, rl.QuaternionIdentity()))

	hit, ok := w.Raycast(rl.Vector3{Y: 0.3}, rl.Vector3{Y: -1}, 100)
	require.True(t, ok)
	assert.Nil(t, hit.Body)
	assert.InDelta(t, 0.3, hit.Distance, 1e-3)
	assert.InDelta(t, 1.0, hit.Normal.Y, 1e-3)
}

func TestAABB(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	c := NewAABBFromCenter(rl.Vector3{X: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.True(t, a.Contains(rl.Vector3{X: 1}))
	assert.False(t, a.Contains(rl.Vector3{X: 1.1}))
}
