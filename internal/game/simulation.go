package game

import (
	"dicebox/internal/config"
	"dicebox/internal/physics"
	"dicebox/internal/roll"

	"github.com/rs/zerolog"
)

// Simulation wires the physics world, die factory and roll session from settings.
type Simulation struct {
	World   *physics.World
	Factory *roll.Factory
	Session *roll.Session
}

func NewSimulation(s *config.Settings, logger zerolog.Logger) (*Simulation, error) {
	if s == nil {
		return nil, roll.ErrMissingConfig
	}

	world := physics.NewWorld(s.PhysicsConfig(), logger)

	factory, err := roll.NewFactory(&roll.FactoryConfig{
		Throw:  s.ThrowConfig(),
		Seed:   s.Seed,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	session, err := roll.NewSession(&roll.Config{
		Physics: roll.WorldPhysics(world),
		Factory: factory,
		Settle:  s.SettleConfig(),
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Int64("seed", factory.Seed()).Msg("simulation ready")
	return &Simulation{World: world, Factory: factory, Session: session}, nil
}

// DieAt maps a physics body back to the die that owns it.
func (s *Simulation) DieAt(body *physics.Body) *roll.Die {
	if body == nil {
		return nil
	}
	for _, d := range s.Session.Dice() {
		if b, ok := d.Body.(*physics.Body); ok && b == body {
			return d
		}
	}
	return nil
}
