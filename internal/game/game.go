package game

import (
	"dicebox/internal/camera"
	"dicebox/internal/config"
	"dicebox/internal/dice"
	"dicebox/internal/roll"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// maxFrameTime keeps a long stall from turning into one huge physics step.
const maxFrameTime = 0.1

type Config struct {
	Settings *config.Settings
	Roll     dice.RollConfig
	Logger   zerolog.Logger
}

// Game is the interactive dice viewer.
type Game struct {
	Sim    *Simulation
	Camera *camera.OrbitCamera

	pending    dice.RollConfig
	resultText string
	hovered    *roll.Die
	logger     zerolog.Logger
}

func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, roll.ErrMissingConfig
	}
	sim, err := NewSimulation(cfg.Settings, cfg.Logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Sim:     sim,
		Camera:  camera.New(rl.Vector3{X: 0, Y: 0, Z: 0}),
		pending: cfg.Roll.Normalize(),
		logger:  cfg.Logger.With().Str("component", "game").Logger(),
	}

	sim.Session.OnRollStarted.AddListener(func(dice.RollConfig) {
		g.resultText = "Rolling..."
	})
	sim.Session.OnRollCompleted.AddListener(func(e roll.RollCompleted) {
		g.resultText = e.Summary.String()
		g.logger.Info().
			Int("total", e.Summary.FinalTotal).
			Bool("forced", e.Forced).
			Msg("roll completed")
	})
	sim.Session.OnReset.AddListener(func() {
		g.resultText = ""
	})
	return g, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "dicebox")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initRayguiStyle()

	g.Sim.Session.StartRoll(g.pending)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	g.Sim.Session.Close()
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()
	if deltaTime > maxFrameTime {
		deltaTime = maxFrameTime
	}

	g.Camera.Update(deltaTime)
	g.handleInput()
	g.Sim.Session.Update(deltaTime)
}

func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.roll()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.reset()
	}

	mouse := rl.GetMousePosition()
	g.hovered = nil
	if overHUD(mouse) {
		return
	}

	ray := rl.GetScreenToWorldRay(mouse, g.Camera.GetRaylibCamera())
	hit, ok := g.Sim.World.Raycast(ray.Position, ray.Direction, 100)
	if !ok {
		return
	}
	g.hovered = g.Sim.DieAt(hit.Body)

	// Left-click inside the box throws towards the clicked point
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.rollAt(hit.Point)
	}
}

func (g *Game) roll() {
	if !g.Sim.Session.StartRoll(g.pending) {
		g.logger.Debug().Msg("ignored roll request while dice are moving")
	}
}

func (g *Game) rollAt(target rl.Vector3) {
	aim := roll.AimAt(target, g.Sim.World.Config.Box.HalfExtent)
	if !g.Sim.Session.StartAimedRoll(g.pending, aim) {
		g.logger.Debug().Msg("ignored roll request while dice are moving")
		return
	}
	g.logger.Debug().
		Float32("x", aim.Target.X).
		Float32("z", aim.Target.Z).
		Float32("strength", aim.Strength).
		Msg("aimed throw")
}

func (g *Game) reset() {
	g.Sim.Session.Reset()
}

// addDie appends a die to the pending request.
func (g *Game) addDie(t dice.DieType) {
	g.pending.Dice = append(g.pending.Dice, t)
}

func (g *Game) clearDice() {
	g.pending.Dice = nil
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBgDark)

	cam := g.Camera.GetRaylibCamera()
	rl.BeginMode3D(cam)
	drawBox(g.Sim.World)
	for _, d := range g.Sim.Session.Dice() {
		drawDie(d, d == g.hovered)
	}
	rl.EndMode3D()

	g.drawLabels(cam)
	g.drawHUD()

	rl.EndDrawing()
}
