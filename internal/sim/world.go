package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bullet-time/internal/config"
	"github.com/vovakirdan/bullet-time/internal/core"
)

// World is the complete round state advanced by Step.
type World struct {
	cfg        config.BulletTimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	phase   core.Phase
	score   int
	player  Player
	bullets []Bullet

	runningTime time.Duration // Time spent in PhaseRunning this round
	frames      int           // Steps since the last restart
}

// NewWorld creates a world and starts the first round.
func NewWorld(cfg config.BulletTimeConfig, seed int64, bounds core.Bounds) *World {
	w := &World{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		bullets:    make([]Bullet, 0, 16),
	}
	w.Restart(bounds)
	return w
}

// Restart begins a new round: the bullet list is replaced, the player goes
// back to its start position, score is 1, clocks are zeroed and a single
// bullet is spawned.
func (w *World) Restart(bounds core.Bounds) {
	w.bullets = w.bullets[:0]
	w.player = NewPlayer(bounds, w.cfg.Player.Size, w.cfg.Player.Speed)
	w.score = 1
	w.phase = core.PhaseRunning
	w.runningTime = 0
	w.frames = 0
	w.difficulty.Reset()

	w.spawn(bounds)
}

// Step advances the world by one frame.
//
// Input is handled first: Pause toggles between running and paused (it is
// ignored after game over) and Restart starts a new round when paused or
// over. If the round is running afterwards, the difficulty clock advances,
// bullets and the player move, and any player/bullet overlap ends the round.
// The step that restarts spends no time, so a new round always begins at
// score 1 with one bullet.
func (w *World) Step(in Input, dt time.Duration, bounds core.Bounds) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	if limit := w.cfg.Timing.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}

	var events []core.Event
	emit := func(kind core.EventKind) {
		events = append(events, core.Event{Kind: kind, Score: w.score})
	}

	if in.Pause {
		switch w.phase {
		case core.PhaseRunning:
			w.phase = core.PhasePaused
			emit(core.EventPaused)
		case core.PhasePaused:
			w.phase = core.PhaseRunning
			emit(core.EventResumed)
		}
	}

	if in.Restart && w.phase != core.PhaseRunning {
		w.Restart(bounds)
		emit(core.EventRestarted)
		dt = 0
	}

	if w.phase != core.PhaseRunning {
		return core.StepResult{State: w.State(), Events: events}
	}

	w.frames++
	w.runningTime += dt

	if w.difficulty.Advance(dt) {
		mult := w.difficulty.Multiplier()
		for i := range w.bullets {
			w.bullets[i].ApplyDifficulty(mult)
		}
		w.spawn(bounds)
		emit(core.EventBulletSpawned)
		w.score++
		emit(core.EventDifficultyTick)
	}

	secs := dt.Seconds()
	for i := range w.bullets {
		w.bullets[i].Advance(secs, bounds)
	}
	w.player.Move(in, secs, bounds)

	if w.collides() {
		w.phase = core.PhaseGameOver
		emit(core.EventCollision)
	}

	return core.StepResult{State: w.State(), Events: events}
}

// spawn adds one bullet at the configured base speed.
func (w *World) spawn(bounds core.Bounds) {
	w.bullets = append(w.bullets, Spawn(w.rng, bounds, w.cfg.Bullets.Speed, w.cfg.Bullets.Size))
}

// collides reports whether any bullet overlaps the player.
func (w *World) collides() bool {
	pb := w.player.Box()
	for _, b := range w.bullets {
		if pb.Intersects(b.Box()) {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:   w.score,
		Phase:   w.phase,
		Elapsed: w.runningTime,
	}
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Bullets returns the live bullets. The slice is owned by the world and is
// only valid until the next Step or Restart.
func (w *World) Bullets() []Bullet {
	return w.bullets
}

// RunningTime returns how long the current round has been running,
// excluding time spent paused.
func (w *World) RunningTime() time.Duration {
	return w.runningTime
}

// Frames returns the number of running steps since the last restart.
func (w *World) Frames() int {
	return w.frames
}

// Difficulty exposes the difficulty clock for HUD display.
func (w *World) Difficulty() *config.DifficultyManager {
	return w.difficulty
}
