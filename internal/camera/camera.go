package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a fixed target, looking down into the dice box.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32 // degrees around Y
	Pitch     float32 // degrees above the horizon
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    6.0,
		Yaw:         -90.0,
		Pitch:       55.0,
		LookSpeed:   0.3,
		ZoomSpeed:   0.5,
		MinDistance: 2.0,
		MaxDistance: 15.0,
	}
}

// Update applies mouse input: right button drag orbits, the wheel zooms.
func (c *OrbitCamera) Update(deltaTime float32) {
	var dYaw, dPitch float32
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		dYaw = mouseDelta.X * c.LookSpeed
		dPitch = mouseDelta.Y * c.LookSpeed
	}
	c.Orbit(dYaw, dPitch, -rl.GetMouseWheelMove()*c.ZoomSpeed)
}

// Orbit rotates and zooms, keeping pitch and distance within limits.
func (c *OrbitCamera) Orbit(dYaw, dPitch, dDistance float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < 5 {
		c.Pitch = 5
	}

	c.Distance += dDistance
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position is the eye position derived from yaw, pitch and distance.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	d := float64(c.Distance)

	return rl.Vector3{
		X: c.Target.X + float32(d*math.Cos(pitchRad)*math.Cos(yawRad)),
		Y: c.Target.Y + float32(d*math.Sin(pitchRad)),
		Z: c.Target.Z + float32(d*math.Cos(pitchRad)*math.Sin(yawRad)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
