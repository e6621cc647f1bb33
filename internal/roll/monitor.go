package roll

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SettleConfig holds the settle rule and the recovery limits.
type SettleConfig struct {
	LinearThreshold  float32 // a die is at rest below this speed
	AngularThreshold float32 // rad/s
	Delay            float32 // seconds every die must stay at rest
	// RollTimeout re-drops the dice when a roll runs this long. 0 disables it.
	RollTimeout float32
	MaxRedrops  int

	OutOfBoundsY      float32
	OutOfBoundsRadius float32
}

func DefaultSettleConfig() SettleConfig {
	return SettleConfig{
		LinearThreshold:   0.1,
		AngularThreshold:  0.1,
		Delay:             0.5,
		RollTimeout:       10.0,
		MaxRedrops:        2,
		OutOfBoundsY:      -5.0,
		OutOfBoundsRadius: 10.0,
	}
}

// Motion is one die's velocity sample for a tick.
type Motion struct {
	Linear  rl.Vector3
	Angular rl.Vector3
}

// AtRest reports whether both speeds are under the thresholds.
func (m Motion) AtRest(cfg SettleConfig) bool {
	return rl.Vector3Length(m.Linear) < cfg.LinearThreshold &&
		rl.Vector3Length(m.Angular) < cfg.AngularThreshold
}

type Verdict int

const (
	VerdictMoving Verdict = iota
	// VerdictSettling means every die is at rest but not for long enough yet.
	VerdictSettling
	VerdictSettled
	// VerdictTimedOut asks the caller to re-drop the dice.
	VerdictTimedOut
	// VerdictForced means the re-drop budget is spent; resolve as is.
	VerdictForced
)

func (v Verdict) String() string {
	switch v {
	case VerdictMoving:
		return "moving"
	case VerdictSettling:
		return "settling"
	case VerdictSettled:
		return "settled"
	case VerdictTimedOut:
		return "timed_out"
	case VerdictForced:
		return "forced"
	}
	return "unknown"
}

// Monitor debounces the all-at-rest condition over time. One per roll.
type Monitor struct {
	cfg         SettleConfig
	settleTimer float32
	rollTimer   float32
	redrops     int
}

func NewMonitor(cfg SettleConfig) *Monitor {
	return &Monitor{cfg: cfg}
}

// Observe feeds one tick of samples and returns the verdict for it.
func (m *Monitor) Observe(dt float32, samples []Motion) Verdict {
	m.rollTimer += dt

	allAtRest := true
	for _, s := range samples {
		if !s.AtRest(m.cfg) {
			allAtRest = false
			break
		}
	}

	if allAtRest {
		m.settleTimer += dt
	} else {
		m.settleTimer = 0
	}

	if m.settleTimer > m.cfg.Delay {
		m.settleTimer = 0
		return VerdictSettled
	}

	if m.cfg.RollTimeout > 0 && m.rollTimer > m.cfg.RollTimeout {
		if m.redrops >= m.cfg.MaxRedrops {
			return VerdictForced
		}
		m.redrops++
		m.rollTimer = 0
		m.settleTimer = 0
		return VerdictTimedOut
	}

	if allAtRest {
		return VerdictSettling
	}
	return VerdictMoving
}

// ResetSettle clears the settle timer, e.g. after a die was moved by hand.
func (m *Monitor) ResetSettle() {
	m.settleTimer = 0
}

// Reset prepares the monitor for a new roll.
func (m *Monitor) Reset() {
	m.settleTimer = 0
	m.rollTimer = 0
	m.redrops = 0
}

func (m *Monitor) SettleTimer() float32 {
	return m.settleTimer
}

func (m *Monitor) Redrops() int {
	return m.redrops
}

// OutOfBounds reports whether a die left the playable volume.
func (m *Monitor) OutOfBounds(pos rl.Vector3) bool {
	if math.IsNaN(float64(pos.X)) || math.IsNaN(float64(pos.Y)) || math.IsNaN(float64(pos.Z)) {
		return true
	}
	return pos.Y < m.cfg.OutOfBoundsY || rl.Vector3Length(pos) > m.cfg.OutOfBoundsRadius
}
