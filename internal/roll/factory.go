package roll

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"dicebox/internal/common/uuid"
	"dicebox/internal/dice"
	"dicebox/internal/geometry"
	"dicebox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ThrowConfig controls spawn placement and the random throw.
type ThrowConfig struct {
	Restitution float32
	Friction    float32

	SpawnHeight  float32
	SpawnSpacing float32
	RestHeight   float32
	Jitter       float32

	MaxLinearSpeed  float32 // horizontal, per axis
	MaxDropSpeed    float32 // downward
	MaxAngularSpeed float32 // rad/s, per axis
	DropSpin        float32 // rad/s, per axis, for gentle re-drops

	// Aimed throws move at MinAimSpeed + Strength*MaxAimSpeed.
	MinAimSpeed     float32
	MaxAimSpeed     float32
	AimDropRatio    float32 // downward speed as a share of the aimed speed
	MaxAimDropSpeed float32
	AimSpin         float32 // rad/s per unit of aimed speed, per axis
}

func DefaultThrowConfig() ThrowConfig {
	return ThrowConfig{
		Restitution:     0.15,
		Friction:        0.7,
		SpawnHeight:     1.0,
		SpawnSpacing:    0.6,
		RestHeight:      0.3,
		Jitter:          0.3,
		MaxLinearSpeed:  1.5,
		MaxDropSpeed:    0.5,
		MaxAngularSpeed: 8.0,
		DropSpin:        1.0,
		MinAimSpeed:     2.0,
		MaxAimSpeed:     8.0,
		AimDropRatio:    0.3,
		MaxAimDropSpeed: 0.9,
		AimSpin:         3.0,
	}
}

// Aim directs a throw from the box centre towards Target.
type Aim struct {
	Target rl.Vector3
	// Strength in [0, 1].
	Strength float32
}

// AimAt clamps target to a box of the given half extent and derives the
// strength from its horizontal distance to the centre.
func AimAt(target rl.Vector3, halfExtent float32) Aim {
	target.X = rl.Clamp(target.X, -halfExtent, halfExtent)
	target.Z = rl.Clamp(target.Z, -halfExtent, halfExtent)
	var strength float32
	if halfExtent > 0 {
		strength = rl.Clamp(rl.Vector2Length(rl.Vector2{X: target.X, Y: target.Z})/halfExtent, 0, 1)
	}
	return Aim{Target: target, Strength: strength}
}

type FactoryConfig struct {
	Throw ThrowConfig
	// Seed for the throw generator. 0 picks a random seed.
	Seed   int64
	UUID   uuid.UUID
	Logger zerolog.Logger
}

// Factory builds dice, registers their bodies and throws them.
type Factory struct {
	throw    ThrowConfig
	seed     int64
	rng      *rand.Rand
	uuid     uuid.UUID
	logger   zerolog.Logger
	collider func(geometry.Polyhedron) (geometry.Collider, error)
}

func NewFactory(cfg *FactoryConfig) (*Factory, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, err
		}
	}
	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	return &Factory{
		throw:    cfg.Throw,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		uuid:     ids,
		logger:   cfg.Logger.With().Str("component", "factory").Logger(),
		collider: geometry.Polyhedron.Collider,
	}, nil
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed of the throw generator, for reproducing a session.
func (f *Factory) Seed() int64 {
	return f.seed
}

// Spawn builds a die of type t, registers its body and throws it from position.
func (f *Factory) Spawn(p Physics, t dice.DieType, position rl.Vector3) *Die {
	d := f.Create(p, t, position)
	f.Throw(d, position)
	return d
}

// Create builds a die of type t and registers its body at position, at rest.
// A die whose hull cannot be built falls back to a sphere and is marked Degraded.
func (f *Factory) Create(p Physics, t dice.DieType, position rl.Vector3) *Die {
	shape := geometry.Build(t).Scaled(t.Scale())

	degraded := false
	collider, err := f.collider(shape)
	if err != nil {
		degraded = true
		collider = geometry.SphereCollider(shape.BoundingRadius())
		f.logger.Warn().
			Err(err).
			Str("die", t.Name()).
			Msg("convex hull failed, falling back to sphere collider")
	}

	body := p.CreateBody(physics.BodyDef{
		Position:    position,
		Rotation:    f.randomRotation(),
		Collider:    collider,
		Density:     t.Density(),
		Restitution: f.throw.Restitution,
		Friction:    f.throw.Friction,
	})

	d := &Die{
		ID:       f.uuid.NewUUID(),
		Type:     t,
		Shape:    shape,
		Faces:    shape.Faces,
		Body:     body,
		Degraded: degraded,
	}

	f.logger.Debug().
		Str("die", t.Name()).
		Str("id", d.ID).
		Bool("degraded", degraded).
		Msg("die spawned")
	return d
}

// Throw places the die near position with a random orientation and velocity.
func (f *Factory) Throw(d *Die, position rl.Vector3) {
	f.place(d, position)

	linear := rl.Vector3{
		X: f.uniform(-f.throw.MaxLinearSpeed, f.throw.MaxLinearSpeed),
		Y: f.uniform(-f.throw.MaxDropSpeed, 0),
		Z: f.uniform(-f.throw.MaxLinearSpeed, f.throw.MaxLinearSpeed),
	}
	d.Body.SetVelocity(linear, f.randomSpin(f.throw.MaxAngularSpeed))
}

// ThrowAimed places the die near position and sends it along the aim with a
// spin that grows with the throw speed.
func (f *Factory) ThrowAimed(d *Die, position rl.Vector3, aim Aim) {
	f.place(d, position)

	linear := f.AimedVelocity(aim)
	speed := f.aimSpeed(aim)
	d.Body.SetVelocity(linear, f.randomSpin(speed*f.throw.AimSpin))
}

// AimedVelocity is the launch velocity for aim. A target at the centre throws
// towards -Z.
func (f *Factory) AimedVelocity(aim Aim) rl.Vector3 {
	dir := rl.Vector3{X: aim.Target.X, Z: aim.Target.Z}
	if rl.Vector3Length(dir) <= 0.001 {
		dir = rl.Vector3{Z: -1}
	} else {
		dir = rl.Vector3Normalize(dir)
	}

	speed := f.aimSpeed(aim)
	drop := speed * f.throw.AimDropRatio
	if drop > f.throw.MaxAimDropSpeed {
		drop = f.throw.MaxAimDropSpeed
	}
	return rl.Vector3{X: dir.X * speed, Y: -drop, Z: dir.Z * speed}
}

func (f *Factory) aimSpeed(aim Aim) float32 {
	return f.throw.MinAimSpeed + rl.Clamp(aim.Strength, 0, 1)*f.throw.MaxAimSpeed
}

// place teleports the die near position with a random orientation.
func (f *Factory) place(d *Die, position rl.Vector3) {
	j := f.throw.Jitter
	pos := rl.Vector3{
		X: position.X + f.uniform(-j, j),
		Y: position.Y + f.uniform(0, j),
		Z: position.Z + f.uniform(-j, j),
	}
	d.Body.Teleport(pos, f.randomRotation())
}

// Drop lets the die fall from position with only a little spin.
func (f *Factory) Drop(d *Die, position rl.Vector3) {
	d.Body.Teleport(position, f.randomRotation())
	d.Body.SetVelocity(rl.Vector3{}, f.randomSpin(f.throw.DropSpin))
}

// SpawnPosition lays n dice on a centered grid at spawn height.
func (f *Factory) SpawnPosition(i, n int) rl.Vector3 {
	return f.gridPosition(i, n, f.throw.SpawnHeight)
}

// RestPosition is the grid slot used when dice are reset.
func (f *Factory) RestPosition(i, n int) rl.Vector3 {
	return f.gridPosition(i, n, f.throw.RestHeight)
}

func (f *Factory) gridPosition(i, n int, y float32) rl.Vector3 {
	if n < 1 {
		n = 1
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	spacing := f.throw.SpawnSpacing

	startX := -float32(cols-1) * spacing / 2
	startZ := -float32(rows-1) * spacing / 2
	return rl.Vector3{
		X: startX + float32(i%cols)*spacing,
		Y: y,
		Z: startZ + float32(i/cols)*spacing,
	}
}

func (f *Factory) randomRotation() rl.Quaternion {
	const tau = 2 * math.Pi
	return rl.QuaternionFromEuler(f.uniform(0, tau), f.uniform(0, tau), f.uniform(0, tau))
}

func (f *Factory) randomSpin(max float32) rl.Vector3 {
	return rl.Vector3{
		X: f.uniform(-max, max),
		Y: f.uniform(-max, max),
		Z: f.uniform(-max, max),
	}
}

func (f *Factory) uniform(min, max float32) float32 {
	return min + f.rng.Float32()*(max-min)
}
