package game

import (
	"fmt"
	"strings"

	"dicebox/internal/dice"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorFloor = rl.NewColor(24, 60, 40, 255)
	colorWall  = rl.NewColor(90, 70, 50, 255)
)

const (
	hudX     = 10
	hudY     = 10
	hudWidth = 260
	rowH     = 28
)

// initRayguiStyle sets up the dark theme
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// hudRect is the screen area owned by the control panel.
func hudRect() rl.Rectangle {
	return rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: float32(rl.GetScreenHeight() - 2*hudY)}
}

func overHUD(mouse rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mouse, hudRect())
}

func (g *Game) drawHUD() {
	panel := hudRect()
	rl.DrawRectangleRec(panel, colorBgPanel)

	x := float32(hudX + 10)
	y := float32(hudY + 10)
	w := float32(hudWidth - 20)

	session := g.Sim.Session
	gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: rowH}, "State: "+session.State().String())
	y += rowH

	// Die picker, three per row
	bw := (w - 10) / 3
	for i, t := range dice.AllDieTypes() {
		col := float32(i % 3)
		row := float32(i / 3)
		r := rl.Rectangle{X: x + col*(bw+5), Y: y + row*(rowH+4), Width: bw, Height: rowH}
		if gui.Button(r, "+"+t.Name()) {
			g.addDie(t)
		}
	}
	y += 2 * (rowH + 4)

	gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: rowH}, "Dice: "+describe(g.pending))
	y += rowH

	half := (w - 5) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: rowH}, "Modifier -") {
		g.pending.Modifier--
	}
	if gui.Button(rl.Rectangle{X: x + half + 5, Y: y, Width: half, Height: rowH}, "Modifier +") {
		g.pending.Modifier++
	}
	y += rowH + 4

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: rowH}, "Clear dice") {
		g.clearDice()
	}
	y += rowH + 10

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: rowH + 6}, "Roll (Space)") {
		g.roll()
	}
	if gui.Button(rl.Rectangle{X: x + half + 5, Y: y, Width: half, Height: rowH + 6}, "Reset (R)") {
		g.reset()
	}
	y += rowH + 20

	lines := strings.Split(g.resultText, "\n")
	for _, line := range lines {
		rl.DrawText(line, int32(x), int32(y), 16, colorTextPrimary)
		y += 20
	}

	rl.DrawText("Right-drag to orbit, wheel to zoom", int32(x), int32(panel.Y+panel.Height-24), 12, colorTextMuted)
}

// describe renders the pending request like "2xD6 + D20 +3".
func describe(cfg dice.RollConfig) string {
	n := cfg.Normalize()
	counts := make(map[dice.DieType]int)
	for _, t := range n.Dice {
		counts[t]++
	}
	var parts []string
	for _, t := range dice.AllDieTypes() {
		switch c := counts[t]; {
		case c == 1:
			parts = append(parts, t.Name())
		case c > 1:
			parts = append(parts, fmt.Sprintf("%dx%s", c, t.Name()))
		}
	}
	out := strings.Join(parts, " + ")
	if cfg.Modifier > 0 {
		out += fmt.Sprintf(" +%d", cfg.Modifier)
	} else if cfg.Modifier < 0 {
		out += fmt.Sprintf(" %d", cfg.Modifier)
	}
	return out
}
