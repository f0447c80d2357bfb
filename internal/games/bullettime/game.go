// Package bullettime adapts the simulation to the terminal platform.
// The player steers a square around the arena and dodges bouncing bullets;
// every difficulty tick speeds bullets up and adds one more.
package bullettime

import (
	"fmt"
	"time"

	"github.com/vovakirdan/bullet-time/internal/config"
	"github.com/vovakirdan/bullet-time/internal/core"
	"github.com/vovakirdan/bullet-time/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	BulletChar = '●'
)

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// Game implements the platform game interface on top of sim.World.
type Game struct {
	cfg     config.BulletTimeConfig
	runtime core.RuntimeConfig
	bounds  core.Bounds
	world   *sim.World
	best    int // Best score since the program started
}

// New creates a game using the given configuration.
func New(cfg config.BulletTimeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bullettime"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bullet Time"
}

// Reset starts a fresh world sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.bounds = ArenaBounds(runtime, g.cfg.Render)
	g.world = sim.NewWorld(g.cfg, runtime.Seed, g.bounds)
}

// Resize changes the arena to match a new screen size without ending the
// round. Entities outside the new arena are pulled back on the next step.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	runtime.Seed = g.runtime.Seed
	g.runtime = runtime
	g.bounds = ArenaBounds(runtime, g.cfg.Render)
}

// Step advances the world by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	res := g.world.Step(sim.InputFromFrame(in), dt, g.bounds)
	if res.State.Score > g.best {
		g.best = res.State.Score
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// Bounds returns the arena size in arena units.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// World exposes the underlying simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// ArenaBounds converts a screen size to arena units. The HUD row is not
// part of the arena.
func ArenaBounds(runtime core.RuntimeConfig, r config.RenderConfig) core.Bounds {
	cols := max(runtime.ScreenW, 0)
	rows := max(runtime.ScreenH-hudRows, 0)
	return core.Bounds{
		W: float64(cols) * r.CellWidth,
		H: float64(rows) * r.CellHeight,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	arenaCols := dst.Width()
	arenaRows := dst.Height() - hudRows

	for _, b := range g.world.Bullets() {
		box := g.cellBox(b.Box(), arenaCols, arenaRows)
		dst.DrawRectWithColor(box, BulletChar, core.ColorBrightRed)
	}

	// Player is drawn last so overlaps read as a hit
	player := g.cellBox(g.world.Player().Box(), arenaCols, arenaRows)
	color := core.ColorBrightGreen
	if g.world.State().GameOver() {
		color = core.ColorRed
	}
	dst.DrawRectWithColor(player, PlayerChar, color)

	g.drawHUD(dst)

	state := g.world.State()
	switch state.Phase {
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Esc to resume  |  Space to restart")
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Survived %s  |  Space to restart", state.Score, formatElapsed(state.Elapsed)))
	}
}

// drawHUD renders the top status row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextWithColor(1, 0, g.Title(), core.ColorCyan)

	state := g.world.State()
	info := fmt.Sprintf("Time %s  Bullets %d", formatElapsed(state.Elapsed), len(g.world.Bullets()))
	if d := g.world.Difficulty(); d.IsEnabled() {
		info += fmt.Sprintf("  Spd %.0f", d.Speed(g.cfg.Bullets.Speed))
	}
	if g.best > 1 {
		info += fmt.Sprintf("  Best %d", g.best)
	}
	dst.DrawTextWithColor(len(g.Title())+3, 0, info, core.ColorGray)

	score := fmt.Sprintf("Score: %d", state.Score)
	dst.DrawTextWithColor(dst.Width()-len(score)-1, 0, score, core.ColorBrightRed)
}

// cellBox maps an arena box to the screen cells it covers. The result is
// clamped into the arena so entities resting on the far walls stay visible.
func (g *Game) cellBox(b core.Box, cols, rows int) core.Rect {
	x0, x1 := cellSpan(b.X, b.Right(), g.cfg.Render.CellWidth, cols)
	y0, y1 := cellSpan(b.Y, b.Bottom(), g.cfg.Render.CellHeight, rows)
	return core.NewRect(x0, y0+hudRows, x1-x0+1, y1-y0+1)
}

// cellSpan returns the inclusive cell range covered by [lo, hi).
func cellSpan(lo, hi, cell float64, n int) (int, int) {
	if n <= 0 {
		return 0, -1
	}
	first := int(lo / cell)
	last := int((hi - 1e-9) / cell)
	if last < first {
		last = first
	}
	first = core.Clamp(first, 0, n-1)
	last = core.Clamp(last, 0, n-1)
	return first, last
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextWithColor(titleX, boxY+1, title, core.ColorBrightRed)

	dst.DrawTextCentered(boxY+3, subtitle)
}

// formatElapsed renders a duration as seconds with one decimal.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
