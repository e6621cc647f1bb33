package dice

import (
	"strings"
)

// RollConfig describes one roll request.
type RollConfig struct {
	Dice         []DieType
	Modifier     int
	ModifierName string
}

// Normalize returns a copy with a single D20 when no dice were requested.
func (c RollConfig) Normalize() RollConfig {
	out := RollConfig{
		Modifier:     c.Modifier,
		ModifierName: c.ModifierName,
	}
	if len(c.Dice) == 0 {
		out.Dice = []DieType{D20}
		return out
	}
	out.Dice = make([]DieType, len(c.Dice))
	copy(out.Dice, c.Dice)
	return out
}

// SameDice reports whether both configs request the same die sequence.
func (c RollConfig) SameDice(other RollConfig) bool {
	if len(c.Dice) != len(other.Dice) {
		return false
	}
	for i := range c.Dice {
		if c.Dice[i] != other.Dice[i] {
			return false
		}
	}
	return true
}

// ParseDiceList parses a comma separated list such as "d6,d6,d20".
func ParseDiceList(s string) ([]DieType, error) {
	var out []DieType
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseDieType(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// FormatDiceList is the inverse of ParseDiceList.
func FormatDiceList(dice []DieType) string {
	names := make([]string, len(dice))
	for i, t := range dice {
		names[i] = strings.ToLower(t.Name())
	}
	return strings.Join(names, ",")
}
