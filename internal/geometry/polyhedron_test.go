package geometry

import (
	"sort"
	"testing"

	"dicebox/internal/dice"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFaceValues(t *testing.T) {
	for _, dt := range dice.AllDieTypes() {
		t.Run(dt.Name(), func(t *testing.T) {
			p := Build(dt)
			require.Len(t, p.Polygons, dt.Faces())
			require.Len(t, p.Faces.Faces, dt.Faces())

			values := make([]int, 0, dt.Faces())
			for _, f := range p.Faces.Faces {
				values = append(values, int(f.Value))
			}
			sort.Ints(values)
			for i, v := range values {
				assert.Equal(t, i+1, v, "values must be a permutation of 1..%d", dt.Faces())
			}
		})
	}
}

func TestBuildNormalsPointOutward(t *testing.T) {
	for _, dt := range dice.AllDieTypes() {
		t.Run(dt.Name(), func(t *testing.T) {
			p := Build(dt)
			center := p.Centroid()
			tol := p.BoundingRadius() * 1e-3

			for i, f := range p.Faces.Faces {
				assert.InDelta(t, 1.0, rl.Vector3Length(f.Normal), 1e-4, "face %d normal", i)

				fc := polygonCentroid(p.Vertices, p.Polygons[i])
				assert.Greater(t, rl.Vector3DotProduct(f.Normal, rl.Vector3Subtract(fc, center)), float32(0), "face %d", i)

				// Every polygon is planar.
				offset := rl.Vector3DotProduct(f.Normal, fc)
				for _, vi := range p.Polygons[i] {
					d := rl.Vector3DotProduct(f.Normal, p.Vertices[vi]) - offset
					assert.InDelta(t, 0, d, float64(tol), "face %d vertex %d", i, vi)
				}
			}
		})
	}
}

func TestBuildOppositeFacesSum(t *testing.T) {
	for _, dt := range []dice.DieType{dice.D6, dice.D8, dice.D12} {
		t.Run(dt.Name(), func(t *testing.T) {
			faces := Build(dt).Faces.Faces
			for i, f := range faces {
				opposite := -1
				for j, g := range faces {
					if rl.Vector3DotProduct(f.Normal, g.Normal) < -0.999 {
						opposite = j
					}
				}
				require.NotEqual(t, -1, opposite, "face %d has no opposite", i)
				assert.Equal(t, uint32(dt.Faces()+1), f.Value+faces[opposite].Value, "face %d", i)
			}
		})
	}
}

func TestBuildMeshWinding(t *testing.T) {
	for _, dt := range dice.AllDieTypes() {
		t.Run(dt.Name(), func(t *testing.T) {
			p := Build(dt)
			require.Equal(t, len(p.Mesh.Vertices), len(p.Mesh.Normals))
			require.Zero(t, len(p.Mesh.Vertices)%3)

			want := 0
			for _, poly := range p.Polygons {
				if len(poly) == 3 {
					want++
				} else {
					want += len(poly)
				}
			}
			assert.Equal(t, want, p.Mesh.TriangleCount())

			m := p.Mesh
			for i := 0; i < len(m.Vertices); i += 3 {
				n := rl.Vector3CrossProduct(
					rl.Vector3Subtract(m.Vertices[i+1], m.Vertices[i]),
					rl.Vector3Subtract(m.Vertices[i+2], m.Vertices[i]),
				)
				assert.Greater(t, rl.Vector3DotProduct(n, m.Normals[i]), float32(0), "triangle %d", i/3)
			}
		})
	}
}

func TestBuildD4ReadsBottom(t *testing.T) {
	p := Build(dice.D4)
	assert.Equal(t, dice.ReadBottom, p.Faces.Reading)
	// Resting on its base, the face on the table is 1.
	assert.Equal(t, uint32(1), dice.Resolve(rl.QuaternionIdentity(), p.Faces))

	for _, dt := range []dice.DieType{dice.D6, dice.D8, dice.D10, dice.D12, dice.D20} {
		assert.Equal(t, dice.ReadTop, Build(dt).Faces.Reading, dt.Name())
	}
}

func TestBuildD6Orientation(t *testing.T) {
	assert.Equal(t, uint32(6), dice.Resolve(rl.QuaternionIdentity(), Build(dice.D6).Faces))
}

func TestBuildUnknownTypePanics(t *testing.T) {
	assert.Panics(t, func() { Build(dice.DieType(42)) })
}

func TestScaled(t *testing.T) {
	p := Build(dice.D6)
	s := p.Scaled(2)

	assert.InDelta(t, 2*p.BoundingRadius(), s.BoundingRadius(), 1e-5)
	assert.Equal(t, p.Faces.Faces, s.Faces.Faces)
	assert.Equal(t, p.Mesh.Normals, s.Mesh.Normals)

	s.Polygons[0][0] = 99
	assert.NotEqual(t, 99, p.Polygons[0][0], "scaled copy must not share polygons")
}

func TestCentroidAtOrigin(t *testing.T) {
	for _, dt := range dice.AllDieTypes() {
		c := Build(dt).Centroid()
		assert.InDelta(t, 0, rl.Vector3Length(c), 1e-4, dt.Name())
	}
}
