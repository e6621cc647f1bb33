package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cross computes the cross product of two vectors
func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// frameDamping turns a per-1/60s damping factor into one for deltaTime
func frameDamping(factor, deltaTime float32) float32 {
	damping := float32(1.0) - (1.0-factor)*deltaTime*60
	if damping < 0 {
		damping = 0
	}
	return damping
}

// integrateRotation advances q by world-space angular velocity w over dt.
func integrateRotation(q rl.Quaternion, w rl.Vector3, dt float32) rl.Quaternion {
	spin := rl.QuaternionMultiply(rl.Quaternion{X: w.X, Y: w.Y, Z: w.Z, W: 0}, q)
	return rl.QuaternionNormalize(rl.QuaternionAdd(q, rl.QuaternionScale(spin, 0.5*dt)))
}

// applyFlatteningTorque tips a slow, grounded hull towards the face closest
// to the floor, standing in for the off-center support a real edge contact gives.
func applyFlatteningTorque(b *Body, gravity, deltaTime float32) {
	speed := rl.Vector3Length(b.Velocity)
	if speed > 2.0 {
		return
	}
	if b.Velocity.Y < -0.5 || b.Velocity.Y > 0.5 {
		return
	}

	face, bestDot := b.lowestFace()
	if face < 0 || bestDot > 0.9995 {
		return
	}

	down := rl.Vector3{Y: -1}
	faceWorld := rl.Vector3RotateByQuaternion(b.Collider.Hull.Planes[face].Normal, b.Rotation)

	// Rotating about face x down swings the face towards the floor
	torqueAxis := cross(faceWorld, down)
	axisLength := rl.Vector3Length(torqueAxis)
	if axisLength < 0.001 {
		return
	}
	torqueAxis = rl.Vector3Scale(torqueAxis, 1.0/axisLength)

	// sin of the tilt angle
	tiltAmount := axisLength
	leverArm := b.Collider.Hull.InRadius()
	torqueMag := b.Mass * float32(math.Abs(float64(gravity))) * leverArm * tiltAmount

	angularAccel := rl.Vector3Scale(torqueAxis, torqueMag/b.Inertia*deltaTime)
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, angularAccel)
}
