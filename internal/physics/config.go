package physics

// BoxConfig is the open-topped container the dice are thrown into.
type BoxConfig struct {
	HalfExtent float32 // walls at ±HalfExtent on X and Z
	WallHeight float32 // visual height of the walls
	Floor      float32
	// Ceiling closes the box at this height above the floor. 0 leaves it open.
	Ceiling     float32
	Restitution float32
	Friction    float32
}

type Config struct {
	Gravity    float32
	Iterations int
	// MaxSubstep caps the integration step; longer frames are split.
	MaxSubstep float32

	LinearDamping  float32 // velocity kept per 1/60 s
	AngularDamping float32

	BounceThreshold   float32 // closing speed below which contacts do not bounce
	CorrectionPercent float32
	CorrectionSlop    float32

	SleepVelocityThreshold float32 // units/sec
	SleepAngularThreshold  float32 // rad/sec
	SleepTimeThreshold     float32 // seconds of low velocity before sleeping
	FlatThreshold          float32 // minimum face alignment for sleeping

	Box BoxConfig
}

func DefaultConfig() Config {
	return Config{
		Gravity:                -9.81,
		Iterations:             4,
		MaxSubstep:             1.0 / 60.0,
		LinearDamping:          0.998,
		AngularDamping:         0.98,
		BounceThreshold:        0.5,
		CorrectionPercent:      0.8,
		CorrectionSlop:         0.005,
		SleepVelocityThreshold: 0.3,
		SleepAngularThreshold:  0.5,
		SleepTimeThreshold:     0.3,
		FlatThreshold:          0.99,
		Box: BoxConfig{
			HalfExtent:  2.0,
			WallHeight:  1.5,
			Floor:       0,
			Ceiling:     6.0,
			Restitution: 0.2,
			Friction:    0.8,
		},
	}
}
