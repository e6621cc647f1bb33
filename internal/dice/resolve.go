package dice

import rl "github.com/gen2brain/raylib-go/raylib"

// Reading selects which face of a settled die carries its value.
type Reading int

const (
	// ReadTop takes the face pointing up.
	ReadTop Reading = iota
	// ReadBottom takes the face resting on the table (d4).
	ReadBottom
)

// Face is an outward unit normal in the die's local frame and the value printed on it.
type Face struct {
	Normal rl.Vector3
	Value  uint32
}

// FaceMapping lists every face of a die in build order.
type FaceMapping struct {
	Faces   []Face
	Reading Reading
}

// Up is the world up axis.
var Up = rl.Vector3{X: 0, Y: 1, Z: 0}

// Resolve returns the value shown by a die with the given orientation.
// The first face with the best alignment wins ties.
func Resolve(orientation rl.Quaternion, m FaceMapping) uint32 {
	best, _ := bestFace(orientation, m)
	if best < 0 {
		return 0
	}
	return m.Faces[best].Value
}

// Alignment is the dot product between the reading face and the reading
// direction. 1 means the die lies perfectly flat.
func Alignment(orientation rl.Quaternion, m FaceMapping) float32 {
	_, score := bestFace(orientation, m)
	return score
}

func bestFace(orientation rl.Quaternion, m FaceMapping) (int, float32) {
	dir := Up
	if m.Reading == ReadBottom {
		dir = rl.Vector3Negate(Up)
	}

	best := -1
	var bestDot float32
	for i, f := range m.Faces {
		world := rl.Vector3RotateByQuaternion(f.Normal, orientation)
		d := rl.Vector3DotProduct(world, dir)
		if best < 0 || d > bestDot {
			best = i
			bestDot = d
		}
	}
	return best, bestDot
}
