package physics

import (
	"math"

	"dicebox/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyDef describes a body to create.
type BodyDef struct {
	Position    rl.Vector3
	Rotation    rl.Quaternion
	Collider    geometry.Collider
	Density     float32
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32
}

// Body is a dynamic rigid body. Angular velocity is world-space, radians per second.
type Body struct {
	ID              int
	Position        rl.Vector3
	Rotation        rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3
	Collider        geometry.Collider
	Mass            float32
	// Inertia is the scalar moment of a solid sphere with the same volume.
	Inertia     float32
	Restitution float32
	Friction    float32

	// Sleep state - sleeping bodies skip integration
	IsSleeping bool
	CanSleep   bool
	sleepTimer float32

	grounded bool
}

func newBody(id int, def BodyDef) *Body {
	density := def.Density
	if density <= 0 {
		density = 1
	}
	rot := def.Rotation
	if rot == (rl.Quaternion{}) {
		rot = rl.QuaternionIdentity()
	}

	volume := def.Collider.Volume()
	mass := density * volume
	r := float32(math.Cbrt(float64(3 * volume / (4 * math.Pi))))

	return &Body{
		ID:          id,
		Position:    def.Position,
		Rotation:    rl.QuaternionNormalize(rot),
		Collider:    def.Collider,
		Mass:        mass,
		Inertia:     0.4 * mass * r * r,
		Restitution: def.Restitution,
		Friction:    def.Friction,
		CanSleep:    true,
	}
}

// Transform returns the world position and orientation.
func (b *Body) Transform() (rl.Vector3, rl.Quaternion) {
	return b.Position, b.Rotation
}

// Velocities returns linear and angular velocity.
func (b *Body) Velocities() (rl.Vector3, rl.Vector3) {
	return b.Velocity, b.AngularVelocity
}

// Teleport places the body and wakes it. Velocities are left alone.
func (b *Body) Teleport(position rl.Vector3, rotation rl.Quaternion) {
	b.Position = position
	b.Rotation = rl.QuaternionNormalize(rotation)
	b.Wake()
}

// SetVelocity overrides both velocities and wakes the body.
func (b *Body) SetVelocity(linear, angular rl.Vector3) {
	b.Velocity = linear
	b.AngularVelocity = angular
	b.Wake()
}

// Wake forces the body out of sleep state
func (b *Body) Wake() {
	b.IsSleeping = false
	b.sleepTimer = 0
}

// Grounded reports whether the body rested on the container floor or on top of
// another body during the last step.
func (b *Body) Grounded() bool {
	return b.grounded
}

// WorldPoint transforms a local point into world space.
func (b *Body) WorldPoint(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.Position, rl.Vector3RotateByQuaternion(local, b.Rotation))
}

// LocalPoint transforms a world point into the body frame.
func (b *Body) LocalPoint(world rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3Subtract(world, b.Position), rl.QuaternionInvert(b.Rotation))
}

// Flatness is the alignment of the lowest face with world down. 1 means the
// body rests exactly on a face. Spheres are always flat.
func (b *Body) Flatness() float32 {
	face, dot := b.lowestFace()
	if face < 0 {
		return 1
	}
	return dot
}

func (b *Body) lowestFace() (int, float32) {
	if b.Collider.Kind != geometry.ColliderConvexHull || b.Collider.Hull == nil {
		return -1, 1
	}
	down := rl.Vector3{Y: -1}
	best := -1
	bestDot := float32(-2)
	for i, p := range b.Collider.Hull.Planes {
		d := rl.Vector3DotProduct(rl.Vector3RotateByQuaternion(p.Normal, b.Rotation), down)
		if d > bestDot {
			best, bestDot = i, d
		}
	}
	return best, bestDot
}

// TrySleep puts the body to sleep after it has been slow and flat for long enough.
func (b *Body) TrySleep(deltaTime float32, cfg Config) {
	if !b.CanSleep || b.IsSleeping {
		return
	}

	speed := rl.Vector3Length(b.Velocity)
	angSpeed := rl.Vector3Length(b.AngularVelocity)

	if speed < cfg.SleepVelocityThreshold && angSpeed < cfg.SleepAngularThreshold && b.Flatness() > cfg.FlatThreshold {
		b.sleepTimer += deltaTime

		// Extra damping near rest reduces jitter
		dampFactor := float32(0.9)
		b.Velocity = rl.Vector3Scale(b.Velocity, dampFactor)
		b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, dampFactor)

		if b.sleepTimer >= cfg.SleepTimeThreshold {
			b.IsSleeping = true
			b.Velocity = rl.Vector3{}
			b.AngularVelocity = rl.Vector3{}
		}
	} else {
		b.sleepTimer = 0
	}
}

// inverse mass and inertia; sleeping bodies act as static during contact resolution
func (b *Body) invMass() float32 {
	if b.IsSleeping || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

func (b *Body) invInertia() float32 {
	if b.IsSleeping || b.Inertia <= 0 {
		return 0
	}
	return 1 / b.Inertia
}

// pointVelocity is the velocity of the material point at offset r from the center.
func (b *Body) pointVelocity(r rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.Velocity, cross(b.AngularVelocity, r))
}

// applyImpulse applies impulse j at offset r from the center of mass.
func (b *Body) applyImpulse(j, r rl.Vector3) {
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(j, b.invMass()))
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, rl.Vector3Scale(cross(r, j), b.invInertia()))
}

// effectiveInvMass is the inverse mass felt along dir at offset r.
func (b *Body) effectiveInvMass(r, dir rl.Vector3) float32 {
	rn := cross(r, dir)
	return b.invMass() + b.invInertia()*rl.Vector3DotProduct(rn, rn)
}

func (b *Body) hasNaN() bool {
	return isNaN(b.Position.X) || isNaN(b.Position.Y) || isNaN(b.Position.Z)
}

func isNaN(f float32) bool {
	return f != f
}
