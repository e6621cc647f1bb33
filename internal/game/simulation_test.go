package game

import (
	"testing"

	"dicebox/internal/config"
	"dicebox/internal/dice"
	"dicebox/internal/physics"
	"dicebox/internal/roll"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	settings, err := config.Load(t.TempDir())
	require.NoError(t, err)
	settings.Seed = 2024

	sim, err := NewSimulation(settings, zerolog.Nop())
	require.NoError(t, err)
	return sim
}

func TestNewSimulation(t *testing.T) {
	_, err := NewSimulation(nil, zerolog.Nop())
	assert.ErrorIs(t, err, roll.ErrMissingConfig)

	sim := newTestSimulation(t)
	assert.Equal(t, int64(2024), sim.Factory.Seed())
	assert.Equal(t, roll.StateIdle, sim.Session.State())
	assert.Zero(t, sim.World.BodyCount())
}

func TestDieAt(t *testing.T) {
	sim := newTestSimulation(t)
	require.True(t, sim.Session.StartRoll(dice.RollConfig{Dice: []dice.DieType{dice.D6, dice.D8}}))
	require.Equal(t, 2, sim.World.BodyCount())

	for _, d := range sim.Session.Dice() {
		body, ok := d.Body.(*physics.Body)
		require.True(t, ok)
		assert.Same(t, d, sim.DieAt(body))
	}
	assert.Nil(t, sim.DieAt(nil))
	assert.Nil(t, sim.DieAt(&physics.Body{}))
}

func TestDescribe(t *testing.T) {
	cfg := dice.RollConfig{Dice: []dice.DieType{dice.D20, dice.D6, dice.D6}, Modifier: 3}
	assert.Equal(t, "2xD6 + D20 +3", describe(cfg))
	assert.Equal(t, "D20", describe(dice.RollConfig{}))
	assert.Equal(t, "D4 -1", describe(dice.RollConfig{Dice: []dice.DieType{dice.D4}, Modifier: -1}))
}
