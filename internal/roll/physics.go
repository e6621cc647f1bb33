package roll

import (
	"dicebox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_physics.go dicebox/internal/roll Physics,Body

// Body is the handle a physics provider returns for one die.
type Body interface {
	Transform() (rl.Vector3, rl.Quaternion)
	Velocities() (linear rl.Vector3, angular rl.Vector3)
	Teleport(position rl.Vector3, rotation rl.Quaternion)
	SetVelocity(linear, angular rl.Vector3)
}

// Physics is the rigid-body provider the session drives.
type Physics interface {
	CreateBody(def physics.BodyDef) Body
	DestroyBody(body Body)
	Step(deltaTime float32)
}

type worldPhysics struct {
	world *physics.World
}

// WorldPhysics adapts the bundled physics world to the Physics interface.
func WorldPhysics(world *physics.World) Physics {
	return &worldPhysics{world: world}
}

func (p *worldPhysics) CreateBody(def physics.BodyDef) Body {
	return p.world.AddBody(def)
}

func (p *worldPhysics) DestroyBody(body Body) {
	if b, ok := body.(*physics.Body); ok {
		p.world.RemoveBody(b)
	}
}

func (p *worldPhysics) Step(deltaTime float32) {
	p.world.Step(deltaTime)
}
