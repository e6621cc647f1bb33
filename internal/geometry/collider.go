package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ColliderKind int

const (
	ColliderConvexHull ColliderKind = iota
	// ColliderSphere is the fallback when the hull cannot be built.
	ColliderSphere
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderConvexHull:
		return "convex_hull"
	case ColliderSphere:
		return "sphere"
	}
	return "unknown"
}

// Collider is the collision volume of a body, centered on its local origin.
type Collider struct {
	Kind ColliderKind
	Hull *Hull
	// Radius is the sphere radius, or the bounding radius of the hull.
	Radius float32
}

func SphereCollider(radius float32) Collider {
	return Collider{Kind: ColliderSphere, Radius: radius}
}

// Volume of the collision shape.
func (c Collider) Volume() float32 {
	if c.Kind == ColliderConvexHull && c.Hull != nil {
		return c.Hull.Volume()
	}
	return 4.0 / 3.0 * math.Pi * c.Radius * c.Radius * c.Radius
}

// Support returns the local point of the shape farthest along dir.
func (c Collider) Support(dir rl.Vector3) rl.Vector3 {
	if c.Kind != ColliderConvexHull || c.Hull == nil {
		return rl.Vector3Scale(rl.Vector3Normalize(dir), c.Radius)
	}
	best := c.Hull.Points[0]
	bestDot := rl.Vector3DotProduct(best, dir)
	for _, p := range c.Hull.Points[1:] {
		if d := rl.Vector3DotProduct(p, dir); d > bestDot {
			best, bestDot = p, d
		}
	}
	return best
}
