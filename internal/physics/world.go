package physics

import (
	"github.com/rs/zerolog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// containerPlane is one side of the dice box. Points inside satisfy
// Dot(Normal, p) >= Offset.
type containerPlane struct {
	Normal rl.Vector3
	Offset float32
	floor  bool
}

// World integrates dice inside an axis-aligned box.
type World struct {
	Config Config
	Bodies []*Body

	planes []containerPlane
	nextID int
	logger zerolog.Logger
}

func NewWorld(cfg Config, logger zerolog.Logger) *World {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	w := &World{
		Config: cfg,
		Bodies: make([]*Body, 0),
		logger: logger.With().Str("component", "physics").Logger(),
	}
	w.planes = boxPlanes(cfg.Box)
	w.logger.Debug().
		Float32("gravity", cfg.Gravity).
		Float32("half_extent", cfg.Box.HalfExtent).
		Int("planes", len(w.planes)).
		Msg("physics world ready")
	return w
}

func boxPlanes(box BoxConfig) []containerPlane {
	h := box.HalfExtent
	planes := []containerPlane{
		{Normal: rl.Vector3{Y: 1}, Offset: box.Floor, floor: true},
		{Normal: rl.Vector3{X: 1}, Offset: -h},
		{Normal: rl.Vector3{X: -1}, Offset: -h},
		{Normal: rl.Vector3{Z: 1}, Offset: -h},
		{Normal: rl.Vector3{Z: -1}, Offset: -h},
	}
	if box.Ceiling > 0 {
		planes = append(planes, containerPlane{Normal: rl.Vector3{Y: -1}, Offset: -(box.Floor + box.Ceiling)})
	}
	return planes
}

// AddBody creates a body and adds it to the simulation.
func (w *World) AddBody(def BodyDef) *Body {
	w.nextID++
	b := newBody(w.nextID, def)
	w.Bodies = append(w.Bodies, b)
	w.logger.Debug().
		Int("body", b.ID).
		Stringer("collider", b.Collider.Kind).
		Float32("mass", b.Mass).
		Msg("body added")
	return b
}

// RemoveBody drops a body from the simulation. Unknown bodies are ignored.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.Bodies {
		if other == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			w.logger.Debug().Int("body", b.ID).Msg("body removed")
			return
		}
	}
}

// BodyCount returns the number of bodies in the world
func (w *World) BodyCount() int {
	return len(w.Bodies)
}

// AwakeCount returns the number of bodies still being integrated
func (w *World) AwakeCount() int {
	n := 0
	for _, b := range w.Bodies {
		if !b.IsSleeping {
			n++
		}
	}
	return n
}

// Step advances the simulation, splitting long frames into substeps.
func (w *World) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	maxStep := w.Config.MaxSubstep
	if maxStep <= 0 {
		w.step(deltaTime)
		return
	}
	for deltaTime > 0 {
		dt := deltaTime
		if dt > maxStep {
			dt = maxStep
		}
		w.step(dt)
		deltaTime -= dt
	}
}

func (w *World) step(deltaTime float32) {
	cfg := w.Config

	// 1. Apply gravity and integrate
	linDamping := frameDamping(cfg.LinearDamping, deltaTime)
	angDamping := frameDamping(cfg.AngularDamping, deltaTime)
	for _, b := range w.Bodies {
		b.grounded = false
		if b.IsSleeping {
			continue
		}

		b.Velocity.Y += cfg.Gravity * deltaTime
		b.Velocity = rl.Vector3Scale(b.Velocity, linDamping)
		b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, angDamping)

		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, deltaTime))
		b.Rotation = integrateRotation(b.Rotation, b.AngularVelocity, deltaTime)
	}

	// 2. Contacts, recomputed every iteration after position correction
	for iter := 0; iter < cfg.Iterations; iter++ {
		first := iter == 0
		for _, b := range w.Bodies {
			if b.IsSleeping {
				continue
			}
			for _, plane := range w.planes {
				w.collidePlane(b, plane, first)
			}
		}
		for i := 0; i < len(w.Bodies); i++ {
			for j := i + 1; j < len(w.Bodies); j++ {
				w.collidePair(w.Bodies[i], w.Bodies[j], first)
			}
		}
	}

	// 3. Tip resting hulls onto a face, then try to sleep. Airborne bodies
	// keep falling freely.
	for _, b := range w.Bodies {
		if b.IsSleeping {
			continue
		}
		if b.grounded {
			applyFlatteningTorque(b, cfg.Gravity, deltaTime)
			b.TrySleep(deltaTime, cfg)
			if b.IsSleeping {
				w.logger.Trace().Int("body", b.ID).Msg("body asleep")
			}
		}
		if b.hasNaN() {
			w.logger.Warn().Int("body", b.ID).Msg("body position is NaN")
		}
	}
}
