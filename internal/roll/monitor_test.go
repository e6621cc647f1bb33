package roll_test

import (
	"math"
	"testing"

	"dicebox/internal/roll"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

// tick is exact in binary so timer comparisons are deterministic.
const tick = float32(0.125)

var (
	still  = roll.Motion{}
	moving = roll.Motion{Linear: rl.Vector3{X: 1}}
)

func TestMonitorSettlesAfterDelay(t *testing.T) {
	m := roll.NewMonitor(roll.DefaultSettleConfig())

	for i := 0; i < 4; i++ {
		assert.Equal(t, roll.VerdictSettling, m.Observe(tick, []roll.Motion{still, still}), "tick %d", i)
	}
	assert.Equal(t, float32(0.5), m.SettleTimer())
	assert.Equal(t, roll.VerdictSettled, m.Observe(tick, []roll.Motion{still, still}))
	assert.Zero(t, m.SettleTimer())
}

func TestMonitorMotionRestartsDebounce(t *testing.T) {
	m := roll.NewMonitor(roll.DefaultSettleConfig())

	for i := 0; i < 4; i++ {
		m.Observe(tick, []roll.Motion{still})
	}
	assert.Equal(t, roll.VerdictMoving, m.Observe(tick, []roll.Motion{moving}))
	assert.Zero(t, m.SettleTimer())

	for i := 0; i < 4; i++ {
		assert.Equal(t, roll.VerdictSettling, m.Observe(tick, []roll.Motion{still}))
	}
	assert.Equal(t, roll.VerdictSettled, m.Observe(tick, []roll.Motion{still}))
}

func TestMonitorOneMovingDieBlocksSettle(t *testing.T) {
	m := roll.NewMonitor(roll.DefaultSettleConfig())
	for i := 0; i < 20; i++ {
		assert.Equal(t, roll.VerdictMoving, m.Observe(tick, []roll.Motion{still, moving, still}))
	}
}

func TestMonitorAngularMotionCounts(t *testing.T) {
	cfg := roll.DefaultSettleConfig()
	assert.False(t, roll.Motion{Angular: rl.Vector3{Y: 0.2}}.AtRest(cfg))
	assert.True(t, roll.Motion{Linear: rl.Vector3{X: 0.05}, Angular: rl.Vector3{Y: 0.05}}.AtRest(cfg))
}

func TestMonitorTimeoutThenForced(t *testing.T) {
	cfg := roll.DefaultSettleConfig()
	cfg.RollTimeout = 1
	cfg.MaxRedrops = 2
	m := roll.NewMonitor(cfg)

	observeUntilChange := func() (roll.Verdict, int) {
		for i := 1; i <= 100; i++ {
			if v := m.Observe(tick, []roll.Motion{moving}); v != roll.VerdictMoving {
				return v, i
			}
		}
		return roll.VerdictMoving, 100
	}

	v, ticks := observeUntilChange()
	assert.Equal(t, roll.VerdictTimedOut, v)
	assert.Equal(t, 9, ticks)
	assert.Equal(t, 1, m.Redrops())

	v, ticks = observeUntilChange()
	assert.Equal(t, roll.VerdictTimedOut, v)
	assert.Equal(t, 9, ticks)
	assert.Equal(t, 2, m.Redrops())

	v, ticks = observeUntilChange()
	assert.Equal(t, roll.VerdictForced, v)
	assert.Equal(t, 9, ticks)

	m.Reset()
	assert.Zero(t, m.Redrops())
	assert.Equal(t, roll.VerdictMoving, m.Observe(tick, []roll.Motion{moving}))
}

func TestMonitorNoTimeout(t *testing.T) {
	cfg := roll.DefaultSettleConfig()
	cfg.RollTimeout = 0
	m := roll.NewMonitor(cfg)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, roll.VerdictMoving, m.Observe(tick, []roll.Motion{moving}))
	}
}

func TestMonitorOutOfBounds(t *testing.T) {
	m := roll.NewMonitor(roll.DefaultSettleConfig())
	nan := float32(math.NaN())

	tests := []struct {
		name string
		pos  rl.Vector3
		want bool
	}{
		{"resting", rl.Vector3{X: 1, Y: 0.3, Z: -1}, false},
		{"fell through", rl.Vector3{Y: -6}, true},
		{"flew away", rl.Vector3{X: 8, Y: 7}, true},
		{"nan", rl.Vector3{X: nan}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.OutOfBounds(tt.pos))
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "settled", roll.VerdictSettled.String())
	assert.Equal(t, "forced", roll.VerdictForced.String())
	assert.Equal(t, "unknown", roll.Verdict(42).String())
}
