package game

import (
	"fmt"

	"dicebox/internal/physics"
	"dicebox/internal/roll"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var lightDir = rl.Vector3Normalize(rl.Vector3{X: 0.4, Y: 1.0, Z: 0.3})

// drawBox draws the floor and the outline of the walls
func drawBox(w *physics.World) {
	bounds := w.ContainerBounds()
	size := rl.Vector3Subtract(bounds.Max, bounds.Min)
	center := rl.Vector3Scale(rl.Vector3Add(bounds.Min, bounds.Max), 0.5)

	rl.DrawPlane(rl.Vector3{X: 0, Y: bounds.Min.Y, Z: 0}, rl.Vector2{X: size.X, Y: size.Z}, colorFloor)
	rl.DrawCubeWiresV(center, size, colorWall)
}

// drawDie draws the flat-shaded mesh and face outlines at the body's pose
func drawDie(d *roll.Die, highlight bool) {
	pos, rot := d.Body.Transform()
	base := d.Type.Color()
	toWorld := func(v rl.Vector3) rl.Vector3 {
		return rl.Vector3Add(pos, rl.Vector3RotateByQuaternion(v, rot))
	}

	mesh := d.Shape.Mesh
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		n := rl.Vector3RotateByQuaternion(mesh.Normals[i], rot)
		light := rl.Vector3DotProduct(n, lightDir)
		if light < 0 {
			light = 0
		}
		rl.DrawTriangle3D(
			toWorld(mesh.Vertices[i]),
			toWorld(mesh.Vertices[i+1]),
			toWorld(mesh.Vertices[i+2]),
			shade(base, 0.55+0.45*light),
		)
	}

	edge := d.Type.LabelColor()
	if highlight {
		edge = colorAccent
	}
	for _, poly := range d.Shape.Polygons {
		for i := range poly {
			a := toWorld(d.Shape.Vertices[poly[i]])
			b := toWorld(d.Shape.Vertices[poly[(i+1)%len(poly)]])
			rl.DrawLine3D(a, b, edge)
		}
	}
}

// drawLabels writes each die's value above it once the roll is resolved,
// and the live reading of the die under the cursor.
func (g *Game) drawLabels(cam rl.Camera3D) {
	session := g.Sim.Session
	if results := session.Results(); results != nil {
		for i, d := range session.Dice() {
			above := rl.Vector3Add(d.Position(), rl.Vector3{Y: 0.5})
			screen := rl.GetWorldToScreen(above, cam)
			text := fmt.Sprint(results[i].Value)
			rl.DrawText(text, int32(screen.X)-rl.MeasureText(text, 24)/2, int32(screen.Y), 24, colorTextPrimary)
		}
	}

	if g.hovered != nil {
		mouse := rl.GetMousePosition()
		text := fmt.Sprintf("%s showing %d", g.hovered.Type.Name(), g.hovered.Value())
		if g.hovered.Degraded {
			text += " (sphere)"
		}
		rl.DrawText(text, int32(mouse.X)+14, int32(mouse.Y)+14, 16, colorTextSecondary)
	}
}

func shade(c rl.Color, f float32) rl.Color {
	return rl.NewColor(uint8(float32(c.R)*f), uint8(float32(c.G)*f), uint8(float32(c.B)*f), c.A)
}
