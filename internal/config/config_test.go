package config

import (
	"os"
	"path/filepath"
	"testing"

	"dicebox/internal/dice"
	"dicebox/internal/physics"
	"dicebox/internal/roll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".json"), []byte(body), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, int64(0), s.Seed)
	assert.Equal(t, physics.DefaultConfig(), s.PhysicsConfig())
	assert.Equal(t, roll.DefaultThrowConfig(), s.ThrowConfig())
	assert.Equal(t, roll.DefaultSettleConfig(), s.SettleConfig())

	rc, err := s.RollConfig()
	require.NoError(t, err)
	assert.Equal(t, []dice.DieType{dice.D20}, rc.Dice)
}

func TestLoadOverrides(t *testing.T) {
	dir := writeConfig(t, `{
		"logLevel": "debug",
		"seed": 1234,
		"dice": "d6,d6,d20",
		"modifier": 3,
		"modifierName": "STR",
		"physics": {"gravity": -5, "iterations": 8, "sleepTimeThreshold": 0.5, "flatThreshold": 0.95},
		"box": {"halfExtent": 3, "floor": -1},
		"throw": {"spawnHeight": 2.5, "dropSpin": 2, "maxAimSpeed": 6},
		"settle": {"rollTimeout": 0, "maxRedrops": 4, "outOfBoundsY": -8}
	}`)

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, int64(1234), s.Seed)

	p := s.PhysicsConfig()
	assert.Equal(t, float32(-5), p.Gravity)
	assert.Equal(t, 8, p.Iterations)
	assert.Equal(t, float32(3), p.Box.HalfExtent)
	assert.Equal(t, float32(-1), p.Box.Floor)
	assert.Equal(t, float32(0.5), p.SleepTimeThreshold)
	assert.Equal(t, float32(0.95), p.FlatThreshold)
	assert.Equal(t, physics.DefaultConfig().Box.Friction, p.Box.Friction, "unset keys keep their defaults")

	throw := s.ThrowConfig()
	assert.Equal(t, float32(2.5), throw.SpawnHeight)
	assert.Equal(t, float32(2), throw.DropSpin)
	assert.Equal(t, float32(6), throw.MaxAimSpeed)
	assert.Equal(t, roll.DefaultThrowConfig().MinAimSpeed, throw.MinAimSpeed)

	settle := s.SettleConfig()
	assert.Zero(t, settle.RollTimeout)
	assert.Equal(t, 4, settle.MaxRedrops)
	assert.Equal(t, float32(-8), settle.OutOfBoundsY)

	rc, err := s.RollConfig()
	require.NoError(t, err)
	assert.Equal(t, []dice.DieType{dice.D6, dice.D6, dice.D20}, rc.Dice)
	assert.Equal(t, 3, rc.Modifier)
	assert.Equal(t, "STR", rc.ModifierName)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, `{"dice": `))
	assert.Error(t, err)
}

func TestRollConfigRejectsUnknownDie(t *testing.T) {
	s, err := Load(writeConfig(t, `{"dice": "d6,d7"}`))
	require.NoError(t, err)

	_, err = s.RollConfig()
	assert.ErrorIs(t, err, dice.ErrUnknownDieType)
}
