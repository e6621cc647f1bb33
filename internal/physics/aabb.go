package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Bounds is the world-space box around the body's bounding sphere.
func (b *Body) Bounds() AABB {
	d := 2 * b.Collider.Radius
	return NewAABBFromCenter(b.Position, rl.Vector3{X: d, Y: d, Z: d})
}

// ContainerBounds is the inside of the dice box up to the wall height.
func (w *World) ContainerBounds() AABB {
	box := w.Config.Box
	return AABB{
		Min: rl.Vector3{X: -box.HalfExtent, Y: box.Floor, Z: -box.HalfExtent},
		Max: rl.Vector3{X: box.HalfExtent, Y: box.Floor + box.WallHeight, Z: box.HalfExtent},
	}
}
