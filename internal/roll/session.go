package roll

import (
	"dicebox/internal/dice"
	"dicebox/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type State int

const (
	StateIdle State = iota
	StateRolling
	StateSettling
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRolling:
		return "rolling"
	case StateSettling:
		return "settling"
	case StateResolved:
		return "resolved"
	}
	return "unknown"
}

// RollCompleted is published once per resolved roll.
type RollCompleted struct {
	Outcomes []Outcome
	Summary  Summary
	// Forced is set when the roll hit its timeout budget and was read as is.
	Forced bool
}

type Config struct {
	Physics Physics
	Factory *Factory
	Settle  SettleConfig
	Logger  zerolog.Logger
}

// Session drives one set of dice through roll, settle and resolve.
// It is tick driven and not safe for concurrent use.
type Session struct {
	physics Physics
	factory *Factory
	monitor *Monitor
	logger  zerolog.Logger

	state   State
	dice    []*Die
	config  dice.RollConfig
	results []Outcome
	summary Summary
	forced  bool

	OnRollStarted   engine.EventWithArg[dice.RollConfig]
	OnRollCompleted engine.EventWithArg[RollCompleted]
	// OnReset fires when Reset returns a non-idle session to idle.
	OnReset engine.Event
}

func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if cfg.Physics == nil {
		return nil, ErrMissingPhysics
	}
	if cfg.Factory == nil {
		return nil, ErrMissingFactory
	}

	return &Session{
		physics: cfg.Physics,
		factory: cfg.Factory,
		monitor: NewMonitor(cfg.Settle),
		logger:  cfg.Logger.With().Str("component", "session").Logger(),
		state:   StateIdle,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// Rolling reports whether dice are still in flight.
func (s *Session) Rolling() bool {
	return s.state == StateRolling || s.state == StateSettling
}

// Dice returns the dice in play.
func (s *Session) Dice() []*Die {
	return s.dice
}

// Config returns the active roll request.
func (s *Session) Config() dice.RollConfig {
	return s.config
}

// Results returns the outcomes of the last roll, or nil unless resolved.
func (s *Session) Results() []Outcome {
	if s.state != StateResolved {
		return nil
	}
	out := make([]Outcome, len(s.results))
	copy(out, s.results)
	return out
}

// Summary returns the grouped result of the last roll.
func (s *Session) Summary() (Summary, bool) {
	if s.state != StateResolved {
		return Summary{}, false
	}
	return s.summary, true
}

// Forced reports whether the last result was read after the timeout budget ran out.
func (s *Session) Forced() bool {
	return s.state == StateResolved && s.forced
}

// StartRoll throws the requested dice. It does nothing and returns false while
// a roll is in flight. An empty request rolls a single D20.
func (s *Session) StartRoll(cfg dice.RollConfig) bool {
	return s.start(cfg, nil)
}

// StartAimedRoll is StartRoll with every die thrown along aim.
func (s *Session) StartAimedRoll(cfg dice.RollConfig, aim Aim) bool {
	return s.start(cfg, &aim)
}

func (s *Session) start(cfg dice.RollConfig, aim *Aim) bool {
	if s.Rolling() {
		s.logger.Debug().Stringer("state", s.state).Msg("roll already in progress")
		return false
	}

	cfg = cfg.Normalize()
	s.results = nil
	s.summary = Summary{}
	s.forced = false

	n := len(cfg.Dice)
	if len(s.dice) == 0 || !s.config.SameDice(cfg) {
		s.despawn()
		for i, t := range cfg.Dice {
			s.dice = append(s.dice, s.factory.Create(s.physics, t, s.factory.SpawnPosition(i, n)))
		}
	}
	for i, d := range s.dice {
		pos := s.factory.SpawnPosition(i, n)
		if aim != nil {
			s.factory.ThrowAimed(d, pos, *aim)
		} else {
			s.factory.Throw(d, pos)
		}
	}

	s.config = cfg
	s.monitor.Reset()
	s.state = StateRolling

	s.logger.Info().
		Int("dice", n).
		Int("modifier", cfg.Modifier).
		Bool("aimed", aim != nil).
		Msg("roll started")
	s.OnRollStarted.Invoke(cfg)
	return true
}

// Update steps physics and then checks the dice, so a resolution always
// reads the orientations produced by the same tick.
func (s *Session) Update(dt float32) {
	if len(s.dice) == 0 {
		return
	}
	s.physics.Step(dt)

	if !s.Rolling() {
		return
	}

	// Recovered dice were just teleported, their motion says nothing yet
	if s.recoverOutOfBounds() {
		return
	}

	samples := make([]Motion, len(s.dice))
	for i, d := range s.dice {
		samples[i] = d.Motion()
	}

	switch s.monitor.Observe(dt, samples) {
	case VerdictMoving:
		s.state = StateRolling
	case VerdictSettling:
		s.state = StateSettling
	case VerdictSettled:
		s.resolve(false)
	case VerdictTimedOut:
		s.logger.Warn().Int("redrops", s.monitor.Redrops()).Msg("roll timed out, re-dropping dice")
		s.redrop()
		s.state = StateRolling
	case VerdictForced:
		s.logger.Warn().Msg("roll timed out too often, reading dice as they lie")
		s.resolve(true)
	}
}

// Reset clears results and lays the dice back on the floor. Calling it
// repeatedly has the same effect as calling it once.
func (s *Session) Reset() {
	s.results = nil
	s.summary = Summary{}
	s.forced = false

	n := len(s.dice)
	for i, d := range s.dice {
		d.Body.Teleport(s.factory.RestPosition(i, n), rl.QuaternionIdentity())
		d.Body.SetVelocity(rl.Vector3{}, rl.Vector3{})
	}

	s.monitor.Reset()
	if s.state == StateIdle {
		return
	}
	s.state = StateIdle
	s.logger.Debug().Msg("session reset")
	s.OnReset.Invoke()
}

// Close removes every die body from the physics provider.
func (s *Session) Close() {
	s.despawn()
	s.state = StateIdle
}

func (s *Session) despawn() {
	for _, d := range s.dice {
		s.physics.DestroyBody(d.Body)
	}
	s.dice = nil
}

func (s *Session) recoverOutOfBounds() bool {
	recovered := false
	n := len(s.dice)
	for i, d := range s.dice {
		if !s.monitor.OutOfBounds(d.Position()) {
			continue
		}
		s.logger.Warn().
			Str("die", d.Type.Name()).
			Str("id", d.ID).
			Msg("die left the box, re-dropping")
		s.factory.Drop(d, s.factory.SpawnPosition(i, n))
		s.monitor.ResetSettle()
		recovered = true
	}
	return recovered
}

func (s *Session) redrop() {
	n := len(s.dice)
	for i, d := range s.dice {
		s.factory.Drop(d, s.factory.SpawnPosition(i, n))
	}
}

func (s *Session) resolve(forced bool) {
	outcomes := make([]Outcome, len(s.dice))
	for i, d := range s.dice {
		outcomes[i] = Outcome{DieType: d.Type, Value: d.Value(), EntityRef: d.ID}
	}

	s.results = outcomes
	s.summary = Summarize(outcomes, s.config.Modifier, s.config.ModifierName)
	s.forced = forced
	s.state = StateResolved

	s.logger.Info().
		Int("total", s.summary.FinalTotal).
		Bool("forced", forced).
		Msg("roll resolved")

	event := RollCompleted{
		Outcomes: make([]Outcome, len(outcomes)),
		Summary:  s.summary,
		Forced:   forced,
	}
	copy(event.Outcomes, outcomes)
	s.OnRollCompleted.Invoke(event)
}
