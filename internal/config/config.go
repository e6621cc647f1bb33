package config

import (
	"errors"
	"fmt"

	"dicebox/internal/dice"
	"dicebox/internal/physics"
	"dicebox/internal/roll"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "dicebox"

type PhysicsSettings struct {
	Gravity        float32 `mapstructure:"gravity"`
	Iterations     int     `mapstructure:"iterations"`
	MaxSubstep     float32 `mapstructure:"maxSubstep"`
	LinearDamping  float32 `mapstructure:"linearDamping"`
	AngularDamping float32 `mapstructure:"angularDamping"`

	BounceThreshold   float32 `mapstructure:"bounceThreshold"`
	CorrectionPercent float32 `mapstructure:"correctionPercent"`
	CorrectionSlop    float32 `mapstructure:"correctionSlop"`

	SleepVelocityThreshold float32 `mapstructure:"sleepVelocityThreshold"`
	SleepAngularThreshold  float32 `mapstructure:"sleepAngularThreshold"`
	SleepTimeThreshold     float32 `mapstructure:"sleepTimeThreshold"`
	FlatThreshold          float32 `mapstructure:"flatThreshold"`
}

type BoxSettings struct {
	HalfExtent  float32 `mapstructure:"halfExtent"`
	WallHeight  float32 `mapstructure:"wallHeight"`
	Floor       float32 `mapstructure:"floor"`
	Ceiling     float32 `mapstructure:"ceiling"`
	Restitution float32 `mapstructure:"restitution"`
	Friction    float32 `mapstructure:"friction"`
}

type ThrowSettings struct {
	Restitution     float32 `mapstructure:"restitution"`
	Friction        float32 `mapstructure:"friction"`
	SpawnHeight     float32 `mapstructure:"spawnHeight"`
	SpawnSpacing    float32 `mapstructure:"spawnSpacing"`
	RestHeight      float32 `mapstructure:"restHeight"`
	Jitter          float32 `mapstructure:"jitter"`
	MaxLinearSpeed  float32 `mapstructure:"maxLinearSpeed"`
	MaxDropSpeed    float32 `mapstructure:"maxDropSpeed"`
	MaxAngularSpeed float32 `mapstructure:"maxAngularSpeed"`
	DropSpin        float32 `mapstructure:"dropSpin"`
	MinAimSpeed     float32 `mapstructure:"minAimSpeed"`
	MaxAimSpeed     float32 `mapstructure:"maxAimSpeed"`
	AimDropRatio    float32 `mapstructure:"aimDropRatio"`
	MaxAimDropSpeed float32 `mapstructure:"maxAimDropSpeed"`
	AimSpin         float32 `mapstructure:"aimSpin"`
}

type SettleSettings struct {
	LinearThreshold  float32 `mapstructure:"linearThreshold"`
	AngularThreshold float32 `mapstructure:"angularThreshold"`
	Delay            float32 `mapstructure:"delay"`
	RollTimeout      float32 `mapstructure:"rollTimeout"`
	MaxRedrops       int     `mapstructure:"maxRedrops"`

	OutOfBoundsY      float32 `mapstructure:"outOfBoundsY"`
	OutOfBoundsRadius float32 `mapstructure:"outOfBoundsRadius"`
}

// Settings is the full dicebox configuration.
type Settings struct {
	LogLevel     string          `mapstructure:"logLevel"`
	Seed         int64           `mapstructure:"seed"`
	Dice         string          `mapstructure:"dice"`
	Modifier     int             `mapstructure:"modifier"`
	ModifierName string          `mapstructure:"modifierName"`
	Physics      PhysicsSettings `mapstructure:"physics"`
	Box          BoxSettings     `mapstructure:"box"`
	Throw        ThrowSettings   `mapstructure:"throw"`
	Settle       SettleSettings  `mapstructure:"settle"`
}

// Load reads dicebox.json from configDir on top of the defaults. A missing
// file is not an error.
func Load(configDir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	p := physics.DefaultConfig()
	t := roll.DefaultThrowConfig()
	s := roll.DefaultSettleConfig()

	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("dice", "d20")
	v.SetDefault("modifier", 0)
	v.SetDefault("modifierName", "")

	v.SetDefault("physics.gravity", p.Gravity)
	v.SetDefault("physics.iterations", p.Iterations)
	v.SetDefault("physics.maxSubstep", p.MaxSubstep)
	v.SetDefault("physics.linearDamping", p.LinearDamping)
	v.SetDefault("physics.angularDamping", p.AngularDamping)
	v.SetDefault("physics.bounceThreshold", p.BounceThreshold)
	v.SetDefault("physics.correctionPercent", p.CorrectionPercent)
	v.SetDefault("physics.correctionSlop", p.CorrectionSlop)
	v.SetDefault("physics.sleepVelocityThreshold", p.SleepVelocityThreshold)
	v.SetDefault("physics.sleepAngularThreshold", p.SleepAngularThreshold)
	v.SetDefault("physics.sleepTimeThreshold", p.SleepTimeThreshold)
	v.SetDefault("physics.flatThreshold", p.FlatThreshold)

	v.SetDefault("box.halfExtent", p.Box.HalfExtent)
	v.SetDefault("box.wallHeight", p.Box.WallHeight)
	v.SetDefault("box.floor", p.Box.Floor)
	v.SetDefault("box.ceiling", p.Box.Ceiling)
	v.SetDefault("box.restitution", p.Box.Restitution)
	v.SetDefault("box.friction", p.Box.Friction)

	v.SetDefault("throw.restitution", t.Restitution)
	v.SetDefault("throw.friction", t.Friction)
	v.SetDefault("throw.spawnHeight", t.SpawnHeight)
	v.SetDefault("throw.spawnSpacing", t.SpawnSpacing)
	v.SetDefault("throw.restHeight", t.RestHeight)
	v.SetDefault("throw.jitter", t.Jitter)
	v.SetDefault("throw.maxLinearSpeed", t.MaxLinearSpeed)
	v.SetDefault("throw.maxDropSpeed", t.MaxDropSpeed)
	v.SetDefault("throw.maxAngularSpeed", t.MaxAngularSpeed)
	v.SetDefault("throw.dropSpin", t.DropSpin)
	v.SetDefault("throw.minAimSpeed", t.MinAimSpeed)
	v.SetDefault("throw.maxAimSpeed", t.MaxAimSpeed)
	v.SetDefault("throw.aimDropRatio", t.AimDropRatio)
	v.SetDefault("throw.maxAimDropSpeed", t.MaxAimDropSpeed)
	v.SetDefault("throw.aimSpin", t.AimSpin)

	v.SetDefault("settle.linearThreshold", s.LinearThreshold)
	v.SetDefault("settle.angularThreshold", s.AngularThreshold)
	v.SetDefault("settle.delay", s.Delay)
	v.SetDefault("settle.rollTimeout", s.RollTimeout)
	v.SetDefault("settle.maxRedrops", s.MaxRedrops)
	v.SetDefault("settle.outOfBoundsY", s.OutOfBoundsY)
	v.SetDefault("settle.outOfBoundsRadius", s.OutOfBoundsRadius)
}

// PhysicsConfig maps the settings onto the physics world config.
func (s *Settings) PhysicsConfig() physics.Config {
	cfg := physics.DefaultConfig()
	cfg.Gravity = s.Physics.Gravity
	cfg.Iterations = s.Physics.Iterations
	cfg.MaxSubstep = s.Physics.MaxSubstep
	cfg.LinearDamping = s.Physics.LinearDamping
	cfg.AngularDamping = s.Physics.AngularDamping
	cfg.BounceThreshold = s.Physics.BounceThreshold
	cfg.CorrectionPercent = s.Physics.CorrectionPercent
	cfg.CorrectionSlop = s.Physics.CorrectionSlop
	cfg.SleepVelocityThreshold = s.Physics.SleepVelocityThreshold
	cfg.SleepAngularThreshold = s.Physics.SleepAngularThreshold
	cfg.SleepTimeThreshold = s.Physics.SleepTimeThreshold
	cfg.FlatThreshold = s.Physics.FlatThreshold
	cfg.Box.HalfExtent = s.Box.HalfExtent
	cfg.Box.WallHeight = s.Box.WallHeight
	cfg.Box.Floor = s.Box.Floor
	cfg.Box.Ceiling = s.Box.Ceiling
	cfg.Box.Restitution = s.Box.Restitution
	cfg.Box.Friction = s.Box.Friction
	return cfg
}

func (s *Settings) ThrowConfig() roll.ThrowConfig {
	cfg := roll.DefaultThrowConfig()
	cfg.Restitution = s.Throw.Restitution
	cfg.Friction = s.Throw.Friction
	cfg.SpawnHeight = s.Throw.SpawnHeight
	cfg.SpawnSpacing = s.Throw.SpawnSpacing
	cfg.RestHeight = s.Throw.RestHeight
	cfg.Jitter = s.Throw.Jitter
	cfg.MaxLinearSpeed = s.Throw.MaxLinearSpeed
	cfg.MaxDropSpeed = s.Throw.MaxDropSpeed
	cfg.MaxAngularSpeed = s.Throw.MaxAngularSpeed
	cfg.DropSpin = s.Throw.DropSpin
	cfg.MinAimSpeed = s.Throw.MinAimSpeed
	cfg.MaxAimSpeed = s.Throw.MaxAimSpeed
	cfg.AimDropRatio = s.Throw.AimDropRatio
	cfg.MaxAimDropSpeed = s.Throw.MaxAimDropSpeed
	cfg.AimSpin = s.Throw.AimSpin
	return cfg
}

func (s *Settings) SettleConfig() roll.SettleConfig {
	cfg := roll.DefaultSettleConfig()
	cfg.LinearThreshold = s.Settle.LinearThreshold
	cfg.AngularThreshold = s.Settle.AngularThreshold
	cfg.Delay = s.Settle.Delay
	cfg.RollTimeout = s.Settle.RollTimeout
	cfg.MaxRedrops = s.Settle.MaxRedrops
	cfg.OutOfBoundsY = s.Settle.OutOfBoundsY
	cfg.OutOfBoundsRadius = s.Settle.OutOfBoundsRadius
	return cfg
}

// RollConfig parses the configured dice list.
func (s *Settings) RollConfig() (dice.RollConfig, error) {
	types, err := dice.ParseDiceList(s.Dice)
	if err != nil {
		return dice.RollConfig{}, err
	}
	return dice.RollConfig{
		Dice:         types,
		Modifier:     s.Modifier,
		ModifierName: s.ModifierName,
	}.Normalize(), nil
}
