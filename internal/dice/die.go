package dice

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DieType is one of the six polyhedral dice.
type DieType int

const (
	D4 DieType = iota
	D6
	D8
	D10
	D12
	D20
)

// DiceError is a custom error type for dice-related errors
type DiceError string

func (e DiceError) Error() string {
	return string(e)
}

const (
	ErrUnknownDieType DiceError = "unknown die type"
)

var allDieTypes = []DieType{D4, D6, D8, D10, D12, D20}

// AllDieTypes returns every die type in face-count order.
func AllDieTypes() []DieType {
	out := make([]DieType, len(allDieTypes))
	copy(out, allDieTypes)
	return out
}

// Faces returns the number of faces, which is also the highest value.
func (t DieType) Faces() int {
	switch t {
	case D4:
		return 4
	case D6:
		return 6
	case D8:
		return 8
	case D10:
		return 10
	case D12:
		return 12
	case D20:
		return 20
	}
	return 0
}

// MaxValue is the largest value the die can show.
func (t DieType) MaxValue() uint32 {
	return uint32(t.Faces())
}

func (t DieType) Name() string {
	switch t {
	case D4:
		return "D4"
	case D6:
		return "D6"
	case D8:
		return "D8"
	case D10:
		return "D10"
	case D12:
		return "D12"
	case D20:
		return "D20"
	}
	return "D?"
}

func (t DieType) String() string {
	return t.Name()
}

// Color is the body color used when drawing the die.
func (t DieType) Color() rl.Color {
	switch t {
	case D4:
		return rl.NewColor(77, 102, 230, 235)
	case D6:
		return rl.NewColor(26, 26, 26, 242)
	case D8:
		return rl.NewColor(153, 51, 204, 235)
	case D10:
		return rl.NewColor(242, 242, 242, 235)
	case D12:
		return rl.NewColor(242, 128, 26, 235)
	case D20:
		return rl.NewColor(242, 217, 51, 235)
	}
	return rl.Gray
}

// LabelColor contrasts with Color for face numbers and outlines.
func (t DieType) LabelColor() rl.Color {
	switch t {
	case D6, D8, D4:
		return rl.RayWhite
	}
	return rl.Black
}

// Density is the mass multiplier of the body. Larger dice are heavier.
func (t DieType) Density() float32 {
	switch t {
	case D4:
		return 1.0
	case D6:
		return 1.5
	case D8:
		return 1.8
	case D10:
		return 2.0
	case D12:
		return 2.5
	case D20:
		return 3.0
	}
	return 1.0
}

// Scale is applied uniformly to the built polyhedron.
func (t DieType) Scale() float32 {
	switch t {
	case D4:
		return 0.9
	case D6, D8:
		return 1.0
	case D10:
		return 1.05
	case D12:
		return 1.1
	case D20:
		return 1.2
	}
	return 1.0
}

// ParseDieType accepts "d6", "D20" and so on.
func ParseDieType(s string) (DieType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range allDieTypes {
		if t.Name() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDieType, s)
}
