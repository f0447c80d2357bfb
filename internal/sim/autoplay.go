package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/bullet-time/internal/core"
)

// Policy chooses the input for the next frame of a headless run.
type Policy func(w *World) Input

// Idle never moves.
func Idle(*World) Input { return Input{} }

// Evade steers the player away from the nearest bullet.
func Evade(w *World) Input {
	pc := center(w.player.Box())

	nearest := math.Inf(1)
	var threat core.Vec2
	for _, b := range w.bullets {
		bc := center(b.Box())
		d := core.Vec2{X: bc.X - pc.X, Y: bc.Y - pc.Y}
		if l := d.Len(); l < nearest {
			nearest = l
			threat = d
		}
	}
	if math.IsInf(nearest, 1) {
		return Input{}
	}

	return Input{
		Left:  threat.X > 0,
		Right: threat.X < 0,
		Up:    threat.Y > 0,
		Down:  threat.Y < 0,
	}
}

func center(b core.Box) core.Vec2 {
	return core.Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// RunResult summarizes a headless run.
type RunResult struct {
	Score    int
	Survived time.Duration
	Frames   int
	Bullets  int
	GameOver bool
}

// Autoplay steps w with a fixed frame delta until the round ends or limit of
// running time has passed.
func Autoplay(w *World, policy Policy, frame, limit time.Duration, bounds core.Bounds) RunResult {
	if frame <= 0 {
		frame = time.Second / 60
	}
	for w.phase == core.PhaseRunning && w.runningTime < limit {
		w.Step(policy(w), frame, bounds)
	}
	return RunResult{
		Score:    w.score,
		Survived: w.runningTime,
		Frames:   w.frames,
		Bullets:  len(w.bullets),
		GameOver: w.phase == core.PhaseGameOver,
	}
}
