package physics

import (
	"math"

	"dicebox/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes the closest hit. Body is nil when the ray hit the
// container rather than a die.
type RaycastHit struct {
	Body     *Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks every body and the container floor and returns the closest hit
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, b := range w.Bodies {
		var hitInfo RaycastHit
		var ok bool
		if isHull(b) {
			hitInfo, ok = raycastHull(origin, direction, b, maxDistance)
		} else {
			hitInfo, ok = raycastSphere(origin, direction, b.Position, b.Collider.Radius, maxDistance)
		}
		if ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Body = b
			hit = true
		}
	}

	if hitInfo, ok := raycastBox(origin, direction, w.floorSlab(), maxDistance); ok {
		if hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			hit = true
		}
	}

	return closestHit, hit
}

// floorSlab is a thin box whose top face is the container floor.
func (w *World) floorSlab() AABB {
	box := w.Config.Box
	return AABB{
		Min: rl.Vector3{X: -box.HalfExtent, Y: box.Floor - 0.1, Z: -box.HalfExtent},
		Max: rl.Vector3{X: box.HalfExtent, Y: box.Floor, Z: box.HalfExtent},
	}
}

// raycastHull clips the ray against every face plane in the body frame. A ray
// starting inside the hull never crosses an entry face and misses.
func raycastHull(origin, direction rl.Vector3, b *Body, maxDistance float32) (RaycastHit, bool) {
	if _, ok := raycastSphere(origin, direction, b.Position, b.Collider.Radius, maxDistance); !ok {
		return RaycastHit{}, false
	}

	inv := rl.QuaternionInvert(b.Rotation)
	o := b.LocalPoint(origin)
	d := rl.Vector3RotateByQuaternion(direction, inv)

	tmin, tmax := float32(0), maxDistance
	var entry geometry.Plane
	entered := false
	for _, p := range b.Collider.Hull.Planes {
		denom := rl.Vector3DotProduct(p.Normal, d)
		dist := p.Distance(o)
		if denom == 0 {
			if dist > 0 {
				return RaycastHit{}, false
			}
			continue
		}
		t := -dist / denom
		if denom < 0 {
			if t > tmin {
				tmin = t
				entry = p
				entered = true
			}
		} else if t < tmax {
			tmax = t
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}
	if !entered {
		return RaycastHit{}, false
	}

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin)),
		Normal:   rl.Vector3RotateByQuaternion(entry.Normal, b.Rotation),
		Distance: tmin,
	}, true
}

func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
