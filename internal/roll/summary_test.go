package roll_test

import (
	"testing"

	"dicebox/internal/dice"
	"dicebox/internal/roll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeGroupsByFaceCount(t *testing.T) {
	outcomes := []roll.Outcome{
		{DieType: dice.D20, Value: 17},
		{DieType: dice.D6, Value: 4},
		{DieType: dice.D6, Value: 2},
	}

	s := roll.Summarize(outcomes, 0, "")

	require.Len(t, s.Groups, 2)
	assert.Equal(t, dice.D6, s.Groups[0].Type)
	assert.Equal(t, []uint32{2, 4}, s.Groups[0].Values)
	assert.Equal(t, 6, s.Groups[0].Sum)
	assert.Equal(t, dice.D20, s.Groups[1].Type)
	assert.Equal(t, 23, s.DiceTotal)
	assert.Equal(t, 23, s.FinalTotal)
}

func TestSummaryString(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []roll.Outcome
		modifier int
		label    string
		want     string
	}{
		{
			name:     "single die",
			outcomes: []roll.Outcome{{DieType: dice.D20, Value: 17}},
			want:     "Results:\nD20: 17\n\nTOTAL: 17",
		},
		{
			name: "group and modifier",
			outcomes: []roll.Outcome{
				{DieType: dice.D6, Value: 4},
				{DieType: dice.D6, Value: 2},
				{DieType: dice.D20, Value: 11},
			},
			modifier: 3,
			label:    "STR",
			want:     "Results:\n2xD6: 2 + 4 = 6\nD20: 11\n\nDice Total: 17\nModifier (STR): +3\n\nFINAL TOTAL: 20",
		},
		{
			name:     "negative modifier without a name",
			outcomes: []roll.Outcome{{DieType: dice.D8, Value: 5}},
			modifier: -2,
			want:     "Results:\nD8: 5\n\nDice Total: 5\nModifier: -2\n\nFINAL TOTAL: 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := roll.Summarize(tt.outcomes, tt.modifier, tt.label)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := roll.Summarize(nil, 4, "")
	assert.Empty(t, s.Groups)
	assert.Equal(t, 0, s.DiceTotal)
	assert.Equal(t, 4, s.FinalTotal)
}
