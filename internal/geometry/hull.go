package geometry

import (
	"fmt"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GeometryError is a custom error type for collision shape construction
type GeometryError string

func (e GeometryError) Error() string {
	return string(e)
}

const (
	ErrTooFewVertices   GeometryError = "convex hull needs at least four vertices"
	ErrDuplicateVertex  GeometryError = "duplicate vertex"
	ErrCoplanarVertices GeometryError = "vertices are coplanar"
	ErrDegenerateHull   GeometryError = "degenerate hull"
)

// Plane is one hull face. Dot(Normal, p) == Offset for points on the plane and
// Normal points out of the solid.
type Plane struct {
	Normal rl.Vector3
	Offset float32
	// Vertices indexes Hull.Points, counter-clockwise around Normal.
	Vertices []int
}

// Distance is the signed distance of p from the plane, positive outside.
func (p Plane) Distance(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, v) - p.Offset
}

// Hull is a convex polyhedron in the die's local frame.
type Hull struct {
	Points  []rl.Vector3
	Planes  []Plane
	// Edges index Points, each shared edge listed once.
	Edges   [][2]int
	samples []rl.Vector3
	volume  float32
}

// NewConvexHull finds the face planes of the convex hull of points by testing
// every vertex triple. Dice have at most twenty vertices so the brute force
// search stays small.
func NewConvexHull(points []rl.Vector3) (*Hull, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(points))
	}

	center := centroid(points)
	var extent float32
	for _, p := range points {
		if d := rl.Vector3Distance(p, center); d > extent {
			extent = d
		}
	}
	if extent == 0 {
		return nil, ErrDegenerateHull
	}
	eps := extent * 1e-4

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if rl.Vector3Distance(points[i], points[j]) < eps {
				return nil, fmt.Errorf("%w: %d and %d", ErrDuplicateVertex, i, j)
			}
		}
	}

	h := &Hull{Points: append([]rl.Vector3(nil), points...)}
	spanned := false
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				n := rl.Vector3CrossProduct(
					rl.Vector3Subtract(points[j], points[i]),
					rl.Vector3Subtract(points[k], points[i]),
				)
				l := rl.Vector3Length(n)
				if l < eps*extent {
					continue
				}
				spanned = true
				n = rl.Vector3Scale(n, 1/l)
				d := rl.Vector3DotProduct(n, points[i])

				above, below := false, false
				for _, p := range points {
					dist := rl.Vector3DotProduct(n, p) - d
					if dist > eps {
						above = true
					} else if dist < -eps {
						below = true
					}
				}
				if above && below {
					continue
				}
				if !above && !below {
					return nil, ErrCoplanarVertices
				}
				if above {
					n = rl.Vector3Negate(n)
					d = -d
				}
				if !h.hasPlane(n, d, eps) {
					h.Planes = append(h.Planes, Plane{Normal: n, Offset: d})
				}
			}
		}
	}
	if !spanned || len(h.Planes) < 4 {
		return nil, ErrDegenerateHull
	}

	for i := range h.Planes {
		h.Planes[i].Vertices = h.planeVertices(h.Planes[i], eps)
	}
	h.collectEdges()
	h.volume = h.computeVolume(center)
	if h.volume <= eps*eps*eps {
		return nil, ErrDegenerateHull
	}
	return h, nil
}

func (h *Hull) hasPlane(n rl.Vector3, d, eps float32) bool {
	for _, p := range h.Planes {
		if rl.Vector3DotProduct(p.Normal, n) > 1-1e-4 && float32(math.Abs(float64(p.Offset-d))) < eps {
			return true
		}
	}
	return false
}

// planeVertices collects the points lying on p, sorted around the face centroid.
func (h *Hull) planeVertices(p Plane, eps float32) []int {
	var idx []int
	for i, v := range h.Points {
		if float32(math.Abs(float64(p.Distance(v)))) <= eps {
			idx = append(idx, i)
		}
	}
	c := polygonCentroid(h.Points, idx)
	u := rl.Vector3Normalize(rl.Vector3Subtract(h.Points[idx[0]], c))
	w := rl.Vector3CrossProduct(p.Normal, u)
	angle := func(i int) float64 {
		d := rl.Vector3Subtract(h.Points[i], c)
		return math.Atan2(float64(rl.Vector3DotProduct(d, w)), float64(rl.Vector3DotProduct(d, u)))
	}
	sort.Slice(idx, func(a, b int) bool { return angle(idx[a]) < angle(idx[b]) })
	return idx
}

// collectEdges walks every face loop and records each edge once, along with
// the sample points used by the narrow phase.
func (h *Hull) collectEdges() {
	seen := make(map[[2]int]bool)
	for _, p := range h.Planes {
		for i := range p.Vertices {
			a, b := p.Vertices[i], p.Vertices[(i+1)%len(p.Vertices)]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			h.Edges = append(h.Edges, key)
		}
	}

	h.samples = append([]rl.Vector3(nil), h.Points...)
	for _, e := range h.Edges {
		h.samples = append(h.samples, rl.Vector3Scale(rl.Vector3Add(h.Points[e[0]], h.Points[e[1]]), 0.5))
	}
}

// SamplePoints returns the vertices followed by every edge midpoint.
func (h *Hull) SamplePoints() []rl.Vector3 {
	return h.samples
}

// computeVolume sums the pyramids from an interior point to every face.
func (h *Hull) computeVolume(interior rl.Vector3) float32 {
	var vol float32
	for _, p := range h.Planes {
		c := polygonCentroid(h.Points, p.Vertices)
		var area float32
		for i := range p.Vertices {
			a := rl.Vector3Subtract(h.Points[p.Vertices[i]], c)
			b := rl.Vector3Subtract(h.Points[p.Vertices[(i+1)%len(p.Vertices)]], c)
			area += rl.Vector3DotProduct(p.Normal, rl.Vector3CrossProduct(a, b)) / 2
		}
		vol += area * -p.Distance(interior) / 3
	}
	return vol
}

// Volume of the solid.
func (h *Hull) Volume() float32 {
	return h.volume
}

// BoundingRadius is the distance from the local origin to the farthest point.
func (h *Hull) BoundingRadius() float32 {
	var r float32
	for _, p := range h.Points {
		if l := rl.Vector3Length(p); l > r {
			r = l
		}
	}
	return r
}

// InRadius is the distance from the local origin to the nearest face.
func (h *Hull) InRadius() float32 {
	r := float32(math.MaxFloat32)
	for _, p := range h.Planes {
		if p.Offset < r {
			r = p.Offset
		}
	}
	return r
}
