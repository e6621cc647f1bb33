package roll

import (
	"dicebox/internal/dice"
	"dicebox/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Die is one die in play.
type Die struct {
	ID    string
	Type  dice.DieType
	Shape geometry.Polyhedron
	Faces dice.FaceMapping
	Body  Body
	// Degraded is set when the die fell back to a sphere collider.
	Degraded bool
}

// Value reads the die in its current orientation.
func (d *Die) Value() uint32 {
	_, rot := d.Body.Transform()
	return dice.Resolve(rot, d.Faces)
}

// Motion samples the body's velocities.
func (d *Die) Motion() Motion {
	lin, ang := d.Body.Velocities()
	return Motion{Linear: lin, Angular: ang}
}

// Position of the die in world space.
func (d *Die) Position() rl.Vector3 {
	pos, _ := d.Body.Transform()
	return pos
}
