package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDieType(t *testing.T) {
	for _, dt := range AllDieTypes() {
		got, err := ParseDieType(dt.Name())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	got, err := ParseDieType(" d12 ")
	require.NoError(t, err)
	assert.Equal(t, D12, got)

	_, err = ParseDieType("d7")
	assert.ErrorIs(t, err, ErrUnknownDieType)
}

func TestDieTypeFaces(t *testing.T) {
	want := map[DieType]int{D4: 4, D6: 6, D8: 8, D10: 10, D12: 12, D20: 20}
	for dt, n := range want {
		assert.Equal(t, n, dt.Faces(), dt.Name())
		assert.Equal(t, uint32(n), dt.MaxValue(), dt.Name())
		assert.Greater(t, dt.Density(), float32(0), dt.Name())
		assert.Greater(t, dt.Scale(), float32(0), dt.Name())
	}
	assert.Equal(t, 0, DieType(99).Faces())
}

func TestRollConfigNormalize(t *testing.T) {
	empty := RollConfig{Modifier: 3, ModifierName: "STR"}.Normalize()
	assert.Equal(t, []DieType{D20}, empty.Dice)
	assert.Equal(t, 3, empty.Modifier)
	assert.Equal(t, "STR", empty.ModifierName)

	src := RollConfig{Dice: []DieType{D6, D6}}
	n := src.Normalize()
	n.Dice[0] = D20
	assert.Equal(t, D6, src.Dice[0], "normalize must copy the dice slice")
}

func TestRollConfigSameDice(t *testing.T) {
	a := RollConfig{Dice: []DieType{D6, D20}}
	assert.True(t, a.SameDice(RollConfig{Dice: []DieType{D6, D20}, Modifier: 4}))
	assert.False(t, a.SameDice(RollConfig{Dice: []DieType{D20, D6}}))
	assert.False(t, a.SameDice(RollConfig{Dice: []DieType{D6}}))
}

func TestParseDiceList(t *testing.T) {
	got, err := ParseDiceList("d6, d6,,D20")
	require.NoError(t, err)
	assert.Equal(t, []DieType{D6, D6, D20}, got)
	assert.Equal(t, "d6,d6,d20", FormatDiceList(got))

	got, err = ParseDiceList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseDiceList("d6,d3")
	assert.ErrorIs(t, err, ErrUnknownDieType)
}
