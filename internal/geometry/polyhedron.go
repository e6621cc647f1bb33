package geometry

import (
	"fmt"

	"dicebox/internal/dice"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh is a flat-shaded triangle list. Every three vertices form one
// counter-clockwise triangle when seen from outside the solid.
type Mesh struct {
	Vertices []rl.Vector3
	Normals  []rl.Vector3
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Polyhedron is the complete local-space description of one die.
// Polygons[i] lists the vertices of the face described by Faces.Faces[i].
type Polyhedron struct {
	Type     dice.DieType
	Vertices []rl.Vector3
	Polygons [][]int
	Mesh     Mesh
	Faces    dice.FaceMapping
}

// Build returns the polyhedron for a die type at unit scale.
func Build(t dice.DieType) Polyhedron {
	switch t {
	case dice.D4:
		return buildD4()
	case dice.D6:
		return buildD6()
	case dice.D8:
		return buildD8()
	case dice.D10:
		return buildD10()
	case dice.D12:
		return buildD12()
	case dice.D20:
		return buildD20()
	}
	panic(fmt.Sprintf("geometry: unknown die type %d", int(t)))
}

// Scaled returns a copy with every vertex multiplied by s. Normals and face
// values are unchanged.
func (p Polyhedron) Scaled(s float32) Polyhedron {
	out := Polyhedron{
		Type:     p.Type,
		Vertices: scaleAll(p.Vertices, s),
		Polygons: make([][]int, len(p.Polygons)),
		Mesh: Mesh{
			Vertices: scaleAll(p.Mesh.Vertices, s),
			Normals:  append([]rl.Vector3(nil), p.Mesh.Normals...),
		},
		Faces: dice.FaceMapping{
			Faces:   append([]dice.Face(nil), p.Faces.Faces...),
			Reading: p.Faces.Reading,
		},
	}
	for i, poly := range p.Polygons {
		out.Polygons[i] = append([]int(nil), poly...)
	}
	return out
}

// Centroid is the mean of the vertices.
func (p Polyhedron) Centroid() rl.Vector3 {
	return centroid(p.Vertices)
}

// BoundingRadius is the distance from the local origin to the farthest vertex.
func (p Polyhedron) BoundingRadius() float32 {
	var r float32
	for _, v := range p.Vertices {
		if l := rl.Vector3Length(v); l > r {
			r = l
		}
	}
	return r
}

// Collider builds the convex hull collision shape for the die.
func (p Polyhedron) Collider() (Collider, error) {
	hull, err := NewConvexHull(p.Vertices)
	if err != nil {
		return Collider{}, fmt.Errorf("%s collider: %w", p.Type, err)
	}
	return Collider{Kind: ColliderConvexHull, Hull: hull, Radius: hull.BoundingRadius()}, nil
}

// newPolyhedron orients every polygon outward, derives the face normals and
// triangulates the render mesh. values[i] is the number on polygons[i].
func newPolyhedron(t dice.DieType, vertices []rl.Vector3, polygons [][]int, values []uint32, reading dice.Reading) Polyhedron {
	center := centroid(vertices)
	p := Polyhedron{
		Type:     t,
		Vertices: vertices,
		Polygons: make([][]int, len(polygons)),
		Faces: dice.FaceMapping{
			Faces:   make([]dice.Face, len(polygons)),
			Reading: reading,
		},
	}

	for i, poly := range polygons {
		oriented, normal := orient(vertices, poly, center)
		p.Polygons[i] = oriented
		p.Faces.Faces[i] = dice.Face{Normal: normal, Value: values[i]}
		p.Mesh = appendFan(p.Mesh, vertices, oriented, normal)
	}
	return p
}

// orient returns the polygon wound counter-clockwise around its outward
// normal, together with that normal.
func orient(vertices []rl.Vector3, poly []int, center rl.Vector3) ([]int, rl.Vector3) {
	out := append([]int(nil), poly...)
	n := newellNormal(vertices, out)
	fc := polygonCentroid(vertices, out)
	if rl.Vector3DotProduct(n, rl.Vector3Subtract(fc, center)) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		n = rl.Vector3Negate(n)
	}
	return out, n
}

// newellNormal is robust for slightly non-planar polygons.
func newellNormal(vertices []rl.Vector3, poly []int) rl.Vector3 {
	var n rl.Vector3
	for i := range poly {
		a := vertices[poly[i]]
		b := vertices[poly[(i+1)%len(poly)]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return rl.Vector3Normalize(n)
}

// appendFan adds a triangle for a triangular face, or a fan around the face
// centroid for larger polygons.
func appendFan(m Mesh, vertices []rl.Vector3, poly []int, normal rl.Vector3) Mesh {
	if len(poly) == 3 {
		m.Vertices = append(m.Vertices, vertices[poly[0]], vertices[poly[1]], vertices[poly[2]])
		m.Normals = append(m.Normals, normal, normal, normal)
		return m
	}
	c := polygonCentroid(vertices, poly)
	for i := range poly {
		a := vertices[poly[i]]
		b := vertices[poly[(i+1)%len(poly)]]
		m.Vertices = append(m.Vertices, c, a, b)
		m.Normals = append(m.Normals, normal, normal, normal)
	}
	return m
}

func polygonCentroid(vertices []rl.Vector3, poly []int) rl.Vector3 {
	var c rl.Vector3
	for _, i := range poly {
		c = rl.Vector3Add(c, vertices[i])
	}
	return rl.Vector3Scale(c, 1/float32(len(poly)))
}

func centroid(points []rl.Vector3) rl.Vector3 {
	if len(points) == 0 {
		return rl.Vector3{}
	}
	var c rl.Vector3
	for _, p := range points {
		c = rl.Vector3Add(c, p)
	}
	return rl.Vector3Scale(c, 1/float32(len(points)))
}

func scaleAll(points []rl.Vector3, s float32) []rl.Vector3 {
	out := make([]rl.Vector3, len(points))
	for i, p := range points {
		out[i] = rl.Vector3Scale(p, s)
	}
	return out
}

// sequence returns 1..n.
func sequence(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i + 1)
	}
	return out
}
