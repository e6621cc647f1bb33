package dice

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func cubeMapping(reading Reading) FaceMapping {
	return FaceMapping{
		Reading: reading,
		Faces: []Face{
			{Normal: rl.Vector3{Y: 1}, Value: 6},
			{Normal: rl.Vector3{Y: -1}, Value: 1},
			{Normal: rl.Vector3{X: 1}, Value: 3},
			{Normal: rl.Vector3{X: -1}, Value: 4},
			{Normal: rl.Vector3{Z: 1}, Value: 2},
			{Normal: rl.Vector3{Z: -1}, Value: 5},
		},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		rotation rl.Quaternion
		reading  Reading
		want     uint32
	}{
		{
			name:     "identity reads the up face",
			rotation: rl.QuaternionIdentity(),
			want:     6,
		},
		{
			name:     "half turn about X flips the die",
			rotation: rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi),
			want:     1,
		},
		{
			name:     "quarter turn about Z brings -X up",
			rotation: rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, -math.Pi/2),
			want:     4,
		},
		{
			name:     "bottom reading takes the face on the table",
			rotation: rl.QuaternionIdentity(),
			reading:  ReadBottom,
			want:     1,
		},
		{
			name:     "slight tilt still reads the closest face",
			rotation: rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, 0.3),
			want:     6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.rotation, cubeMapping(tt.reading))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFirstFaceWinsTies(t *testing.T) {
	m := FaceMapping{Faces: []Face{
		{Normal: rl.Vector3{Y: 1}, Value: 7},
		{Normal: rl.Vector3{Y: 1}, Value: 9},
	}}
	assert.Equal(t, uint32(7), Resolve(rl.QuaternionIdentity(), m))
}

func TestResolveEmptyMapping(t *testing.T) {
	assert.Equal(t, uint32(0), Resolve(rl.QuaternionIdentity(), FaceMapping{}))
}

func TestAlignment(t *testing.T) {
	m := cubeMapping(ReadTop)
	assert.InDelta(t, 1.0, Alignment(rl.QuaternionIdentity(), m), 1e-6)

	// Balanced on an edge, the best face is 45 degrees off.
	tilted := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi/4)
	assert.InDelta(t, math.Sqrt2/2, Alignment(tilted, m), 1e-5)
}
