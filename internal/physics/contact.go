package physics

import (
	"dicebox/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// supportNormalY is the minimum upward component of a contact normal that
// counts as resting on top of another body.
const supportNormalY = 0.7

// contact is a single averaged manifold point. Normal points towards the
// body being pushed out.
type contact struct {
	Point  rl.Vector3
	Normal rl.Vector3
	Depth  float32
}

// planeContact averages every collider point behind the plane.
func planeContact(b *Body, plane containerPlane) (contact, bool) {
	c := contact{Normal: plane.Normal}

	if b.Collider.Kind != geometry.ColliderConvexHull || b.Collider.Hull == nil {
		p := rl.Vector3Subtract(b.Position, rl.Vector3Scale(plane.Normal, b.Collider.Radius))
		depth := plane.Offset - rl.Vector3DotProduct(plane.Normal, p)
		if depth <= 0 {
			return c, false
		}
		c.Point, c.Depth = p, depth
		return c, true
	}

	var sum rl.Vector3
	count := 0
	for _, local := range b.Collider.Hull.Points {
		p := b.WorldPoint(local)
		depth := plane.Offset - rl.Vector3DotProduct(plane.Normal, p)
		if depth <= 0 {
			continue
		}
		sum = rl.Vector3Add(sum, p)
		count++
		if depth > c.Depth {
			c.Depth = depth
		}
	}
	if count == 0 {
		return c, false
	}
	c.Point = rl.Vector3Scale(sum, 1/float32(count))
	return c, true
}

// collidePlane resolves a body against one container side
func (w *World) collidePlane(b *Body, plane containerPlane, first bool) {
	c, ok := planeContact(b, plane)
	if !ok {
		return
	}
	if plane.floor {
		b.grounded = true
	}

	box := w.Config.Box
	n := c.Normal
	r := rl.Vector3Subtract(c.Point, b.Position)
	vn := rl.Vector3DotProduct(b.pointVelocity(r), n)

	if vn < 0 {
		var e float32
		if first && -vn > w.Config.BounceThreshold {
			e = (b.Restitution + box.Restitution) / 2
		}
		jn := -(1 + e) * vn / b.effectiveInvMass(r, n)
		b.applyImpulse(rl.Vector3Scale(n, jn), r)

		mu := (b.Friction + box.Friction) / 2
		applyFriction(b, nil, r, rl.Vector3{}, n, jn, mu)
	}

	if c.Depth > w.Config.CorrectionSlop {
		correction := (c.Depth - w.Config.CorrectionSlop) * w.Config.CorrectionPercent
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(n, correction))
	}
}

// collidePair resolves two dice. Bounding boxes and spheres act as the broad phase.
func (w *World) collidePair(a, b *Body, first bool) {
	if a.IsSleeping && b.IsSleeping {
		return
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return
	}
	reach := a.Collider.Radius + b.Collider.Radius
	delta := rl.Vector3Subtract(a.Position, b.Position)
	if rl.Vector3DotProduct(delta, delta) >= reach*reach {
		return
	}

	c, ok := pairContact(a, b)
	if !ok {
		return
	}
	w.wakeOnImpact(a, b)

	// A die lying on another one is supported like one on the floor
	if c.Normal.Y > supportNormalY {
		a.grounded = true
	} else if c.Normal.Y < -supportNormalY {
		b.grounded = true
	}

	n := c.Normal
	rA := rl.Vector3Subtract(c.Point, a.Position)
	rB := rl.Vector3Subtract(c.Point, b.Position)
	vrel := rl.Vector3Subtract(a.pointVelocity(rA), b.pointVelocity(rB))
	vn := rl.Vector3DotProduct(vrel, n)

	if vn < 0 {
		k := a.effectiveInvMass(rA, n) + b.effectiveInvMass(rB, n)
		if k <= 0 {
			return
		}
		var e float32
		if first && -vn > w.Config.BounceThreshold {
			e = (a.Restitution + b.Restitution) / 2
		}
		jn := -(1 + e) * vn / k
		a.applyImpulse(rl.Vector3Scale(n, jn), rA)
		b.applyImpulse(rl.Vector3Scale(n, -jn), rB)

		mu := (a.Friction + b.Friction) / 2
		applyFriction(a, b, rA, rB, n, jn, mu)
	}

	// Push apart by inverse mass ratio
	invA, invB := a.invMass(), b.invMass()
	total := invA + invB
	if total > 0 && c.Depth > w.Config.CorrectionSlop {
		correction := (c.Depth - w.Config.CorrectionSlop) * w.Config.CorrectionPercent / total
		a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(n, correction*invA))
		b.Position = rl.Vector3Subtract(b.Position, rl.Vector3Scale(n, correction*invB))
	}
}

// wakeOnImpact wakes sleeping bodies only on significant relative velocity,
// so micro-collisions do not disturb settled dice.
func (w *World) wakeOnImpact(a, b *Body) {
	relSpeed := rl.Vector3Length(rl.Vector3Subtract(a.Velocity, b.Velocity))
	if relSpeed <= w.Config.SleepVelocityThreshold*2 {
		return
	}
	if a.IsSleeping {
		a.Wake()
	}
	if b.IsSleeping {
		b.Wake()
	}
}

// applyFriction clamps the tangential impulse to the Coulomb cone. b may be
// nil for contacts against the container.
func applyFriction(a, b *Body, rA, rB, n rl.Vector3, jn, mu float32) {
	vrel := a.pointVelocity(rA)
	if b != nil {
		vrel = rl.Vector3Subtract(vrel, b.pointVelocity(rB))
	}
	vt := rl.Vector3Subtract(vrel, rl.Vector3Scale(n, rl.Vector3DotProduct(vrel, n)))
	speed := rl.Vector3Length(vt)
	if speed < 1e-6 {
		return
	}
	t := rl.Vector3Scale(vt, 1/speed)

	k := a.effectiveInvMass(rA, t)
	if b != nil {
		k += b.effectiveInvMass(rB, t)
	}
	if k <= 0 {
		return
	}
	jt := clamp(-speed/k, -mu*jn, mu*jn)
	a.applyImpulse(rl.Vector3Scale(t, jt), rA)
	if b != nil {
		b.applyImpulse(rl.Vector3Scale(t, -jt), rB)
	}
}

// pairContact finds the deepest penetration between two bodies. The normal
// points from b towards a.
func pairContact(a, b *Body) (contact, bool) {
	if isHull(a) && isHull(b) {
		ca, okA := verticesInside(a, b)
		cb, okB := verticesInside(b, a)
		switch {
		case okA && (!okB || ca.Depth >= cb.Depth):
			return ca, true
		case okB:
			cb.Normal = rl.Vector3Negate(cb.Normal)
			return cb, true
		}
		return contact{}, false
	}

	// Sphere fallback uses a radius between the hull's in and out radius
	ra, rb := contactRadius(a), contactRadius(b)
	delta := rl.Vector3Subtract(a.Position, b.Position)
	dist := rl.Vector3Length(delta)
	depth := ra + rb - dist
	if depth <= 0 {
		return contact{}, false
	}
	n := rl.Vector3{Y: 1}
	if dist > 1e-6 {
		n = rl.Vector3Scale(delta, 1/dist)
	}
	return contact{
		Point:  rl.Vector3Add(b.Position, rl.Vector3Scale(n, rb-depth/2)),
		Normal: n,
		Depth:  depth,
	}, true
}

// verticesInside tests every vertex and edge midpoint of p against the face
// planes of q. Edge midpoints catch two edges crossing with no vertex inside.
// The normal is the world-space normal of q's face nearest the deepest point.
func verticesInside(p, q *Body) (contact, bool) {
	var c contact
	var sum rl.Vector3
	count := 0
	planes := q.Collider.Hull.Planes

	for _, v := range p.Collider.Hull.SamplePoints() {
		world := p.WorldPoint(v)
		local := q.LocalPoint(world)

		inside := true
		nearest := -1
		var nearestDist float32
		for i, plane := range planes {
			d := plane.Distance(local)
			if d > 0 {
				inside = false
				break
			}
			if nearest < 0 || d > nearestDist {
				nearest, nearestDist = i, d
			}
		}
		if !inside || nearest < 0 {
			continue
		}

		sum = rl.Vector3Add(sum, world)
		count++
		if depth := -nearestDist; depth > c.Depth || count == 1 {
			c.Depth = depth
			c.Normal = rl.Vector3RotateByQuaternion(planes[nearest].Normal, q.Rotation)
		}
	}
	if count == 0 {
		return c, false
	}
	c.Point = rl.Vector3Scale(sum, 1/float32(count))
	return c, true
}

func isHull(b *Body) bool {
	return b.Collider.Kind == geometry.ColliderConvexHull && b.Collider.Hull != nil
}

func contactRadius(b *Body) float32 {
	if isHull(b) {
		return (b.Collider.Hull.InRadius() + b.Collider.Radius) / 2
	}
	return b.Collider.Radius
}
