package geometry

import (
	"math"

	"dicebox/internal/dice"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const phi = 1.618033988749895

// Tetrahedron with edge 0.5 and its centroid at the origin. The base
// opposite the apex carries 1.
func buildD4() Polyhedron {
	const a = 0.5
	h := float32(a * math.Sqrt(2.0/3.0))
	r := float32(a / math.Sqrt(3))
	s := r * float32(math.Sqrt(3)) / 2

	vertices := []rl.Vector3{
		{X: 0, Y: 3 * h / 4, Z: 0},
		{X: 0, Y: -h / 4, Z: r},
		{X: s, Y: -h / 4, Z: -r / 2},
		{X: -s, Y: -h / 4, Z: -r / 2},
	}
	polygons := [][]int{
		{1, 2, 3},
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
	}
	return newPolyhedron(dice.D4, vertices, polygons, sequence(4), dice.ReadBottom)
}

// Cube of side 0.6. Vertex index bits are x<<2 | y<<1 | z.
func buildD6() Polyhedron {
	const half = 0.3
	vertices := make([]rl.Vector3, 8)
	for i := range vertices {
		vertices[i] = rl.Vector3{
			X: signBit(i&4 != 0) * half,
			Y: signBit(i&2 != 0) * half,
			Z: signBit(i&1 != 0) * half,
		}
	}
	polygons := [][]int{
		{2, 3, 7, 6}, // +Y
		{0, 4, 5, 1}, // -Y
		{4, 6, 7, 5}, // +X
		{0, 1, 3, 2}, // -X
		{1, 5, 7, 3}, // +Z
		{0, 2, 6, 4}, // -Z
	}
	values := []uint32{6, 1, 3, 4, 2, 5}
	return newPolyhedron(dice.D6, vertices, polygons, values, dice.ReadTop)
}

// Octahedron with vertices at 0.5 on each axis. One face per octant, opposite
// octants sum to 9.
func buildD8() Polyhedron {
	const size = 0.5
	vertices := []rl.Vector3{
		{Y: size}, {Y: -size},
		{X: size}, {X: -size},
		{Z: size}, {Z: -size},
	}
	axis := func(positive bool, pos, neg int) int {
		if positive {
			return pos
		}
		return neg
	}

	octants := []struct {
		x, y, z bool
		value   uint32
	}{
		{true, true, true, 1},
		{false, true, true, 2},
		{true, true, false, 3},
		{false, true, false, 4},
		{true, false, true, 5},
		{false, false, true, 6},
		{true, false, false, 7},
		{false, false, false, 8},
	}

	polygons := make([][]int, 0, len(octants))
	values := make([]uint32, 0, len(octants))
	for _, o := range octants {
		polygons = append(polygons, []int{axis(o.y, 0, 1), axis(o.x, 2, 3), axis(o.z, 4, 5)})
		values = append(values, o.value)
	}
	return newPolyhedron(dice.D8, vertices, polygons, values, dice.ReadTop)
}

// Pentagonal trapezohedron. The ring height follows from the apex height so
// that every kite is planar. Odd values sit on the upper kites.
func buildD10() Polyhedron {
	const (
		apex   = 0.45
		radius = 0.35
	)
	cos36 := math.Cos(math.Pi / 5)
	ring := float32(apex * (1 - cos36) / (1 + cos36))

	vertices := []rl.Vector3{{Y: apex}, {Y: -apex}}
	for i := 0; i < 5; i++ {
		a := float64(i) * 2 * math.Pi / 5
		vertices = append(vertices, rl.Vector3{X: radius * float32(math.Cos(a)), Y: ring, Z: radius * float32(math.Sin(a))})
	}
	for i := 0; i < 5; i++ {
		a := (float64(i) + 0.5) * 2 * math.Pi / 5
		vertices = append(vertices, rl.Vector3{X: radius * float32(math.Cos(a)), Y: -ring, Z: radius * float32(math.Sin(a))})
	}
	upper := func(i int) int { return 2 + i%5 }
	lower := func(i int) int { return 7 + i%5 }

	var polygons [][]int
	var values []uint32
	for i := 0; i < 5; i++ {
		polygons = append(polygons, []int{0, upper(i), lower(i), upper(i + 1)})
		values = append(values, uint32(2*i+1))
		polygons = append(polygons, []int{1, lower(i), upper(i + 1), lower(i + 1)})
		values = append(values, uint32(2*i+2))
	}
	return newPolyhedron(dice.D10, vertices, polygons, values, dice.ReadTop)
}

// Dodecahedron. Face i and face 11-i are opposite, so opposite faces sum to 13.
func buildD12() Polyhedron {
	const s = 0.2
	inv := 1 / phi
	raw := [][3]float64{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		{0, -phi, -inv}, {0, -phi, inv}, {0, phi, -inv}, {0, phi, inv},
		{-inv, 0, -phi}, {-inv, 0, phi}, {inv, 0, -phi}, {inv, 0, phi},
		{-phi, -inv, 0}, {-phi, inv, 0}, {phi, -inv, 0}, {phi, inv, 0},
	}
	polygons := [][]int{
		{3, 13, 15, 7, 11},
		{2, 10, 6, 14, 12},
		{6, 10, 11, 7, 19},
		{2, 17, 3, 11, 10},
		{5, 18, 19, 7, 15},
		{4, 14, 6, 19, 18},
		{1, 13, 3, 17, 16},
		{0, 16, 17, 2, 12},
		{4, 18, 5, 9, 8},
		{0, 8, 9, 1, 16},
		{1, 9, 5, 15, 13},
		{0, 12, 14, 4, 8},
	}
	return newPolyhedron(dice.D12, scaled(raw, s), polygons, sequence(12), dice.ReadTop)
}

// Icosahedron, numbered in face-list order.
func buildD20() Polyhedron {
	const s = 0.175
	raw := [][3]float64{
		{0, 1, phi}, {0, -1, phi}, {0, 1, -phi}, {0, -1, -phi},
		{1, phi, 0}, {-1, phi, 0}, {1, -phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {-phi, 0, 1}, {phi, 0, -1}, {-phi, 0, -1},
	}
	polygons := [][]int{
		{0, 1, 8}, {0, 8, 4}, {0, 4, 5}, {0, 5, 9}, {0, 9, 1},
		{1, 6, 8}, {8, 6, 10}, {8, 10, 4}, {4, 10, 2}, {4, 2, 5},
		{5, 2, 11}, {5, 11, 9}, {9, 11, 7}, {9, 7, 1}, {1, 7, 6},
		{3, 6, 7}, {3, 10, 6}, {3, 2, 10}, {3, 11, 2}, {3, 7, 11},
	}
	return newPolyhedron(dice.D20, scaled(raw, s), polygons, sequence(20), dice.ReadTop)
}

func scaled(raw [][3]float64, s float64) []rl.Vector3 {
	out := make([]rl.Vector3, len(raw))
	for i, p := range raw {
		out[i] = rl.Vector3{X: float32(p[0] * s), Y: float32(p[1] * s), Z: float32(p[2] * s)}
	}
	return out
}

func signBit(positive bool) float32 {
	if positive {
		return 1
	}
	return -1
}
