package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/bullet-time/internal/config"
	"github.com/vovakirdan/bullet-time/internal/core"
)

const frame = time.Second / 60

// testConfig returns defaults without the frame delta ceiling so tests can
// take large steps.
func testConfig() config.BulletTimeConfig {
	cfg := config.Default()
	cfg.Timing.MaxFrameDelta = 0
	return cfg
}

// parkBullets replaces the world's bullets with stationary ones in the top
// left corner, far from the player's start position.
func parkBullets(w *World, n int) {
	w.bullets = w.bullets[:0]
	for i := 0; i < n; i++ {
		w.bullets = append(w.bullets, Bullet{
			Pos:   core.Vec2{X: float64(i * 20), Y: 0},
			Dir:   core.Vec2{X: 1, Y: 0},
			Speed: 0,
			Size:  10,
		})
	}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewWorldStartsRound(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)

	s := w.State()
	if s.Phase != core.PhaseRunning {
		t.Errorf("phase = %s, expected running", s.Phase)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, expected 1", s.Score)
	}
	if len(w.Bullets()) != 1 {
		t.Errorf("bullets = %d, expected 1", len(w.Bullets()))
	}
}

func TestRestartPostconditions(t *testing.T) {
	w := NewWorld(testConfig(), 5, testBounds)

	// Build up some state: extra bullets, score, moved player, game over
	parkBullets(w, 4)
	w.score = 9
	w.player.Pos = core.Vec2{X: 3, Y: 3}
	w.phase = core.PhaseGameOver
	w.runningTime = time.Minute
	w.difficulty.Advance(5 * time.Second)

	w.Restart(testBounds)

	if w.State() != (core.GameState{Score: 1, Phase: core.PhaseRunning}) {
		t.Errorf("state after restart = %+v", w.State())
	}
	if len(w.Bullets()) != 1 {
		t.Errorf("bullets after restart = %d, expected 1", len(w.Bullets()))
	}
	if w.Player().Pos != NewPlayer(testBounds, 50, 400).Pos {
		t.Errorf("player should return to start, got %v", w.Player().Pos)
	}
	if w.RunningTime() != 0 || w.Frames() != 0 || w.Difficulty().Elapsed() != 0 {
		t.Error("clocks should be zeroed by restart")
	}
}

func TestPauseToggle(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)
	parkBullets(w, 1)

	res := w.Step(Input{Pause: true}, frame, testBounds)
	if res.State.Phase != core.PhasePaused || !hasEvent(res.Events, core.EventPaused) {
		t.Fatalf("first pause should pause, got %+v", res)
	}

	// Held movement is ignored while paused
	before := w.Player().Pos
	w.Step(Input{Left: true}, time.Second, testBounds)
	if w.Player().Pos != before {
		t.Error("player should not move while paused")
	}
	if w.RunningTime() != 0 {
		t.Error("running time should not advance while paused")
	}

	res = w.Step(Input{Pause: true}, frame, testBounds)
	if res.State.Phase != core.PhaseRunning || !hasEvent(res.Events, core.EventResumed) {
		t.Fatalf("second pause should resume, got %+v", res)
	}
}

func TestPausedTimeDoesNotFeedDifficulty(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)
	parkBullets(w, 1)

	w.Step(Input{Pause: true}, frame, testBounds)
	for i := 0; i < 20; i++ {
		w.Step(Input{}, time.Second, testBounds)
	}
	res := w.Step(Input{Pause: true}, frame, testBounds)

	if hasEvent(res.Events, core.EventDifficultyTick) {
		t.Error("time spent paused should not trigger a difficulty tick")
	}
	if w.State().Score != 1 {
		t.Errorf("score = %d, expected 1", w.State().Score)
	}
}

func TestRestartOnlyWhenStopped(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)
	parkBullets(w, 3)

	w.Step(Input{Restart: true}, frame, testBounds)
	if len(w.Bullets()) != 3 {
		t.Error("restart should be ignored while running")
	}

	w.Step(Input{Pause: true}, frame, testBounds)
	res := w.Step(Input{Restart: true}, frame, testBounds)
	if !hasEvent(res.Events, core.EventRestarted) {
		t.Error("restart from pause should report a restart event")
	}
	if res.State.Phase != core.PhaseRunning || res.State.Score != 1 || len(w.Bullets()) != 1 {
		t.Errorf("restart from pause: state %+v, %d bullets", res.State, len(w.Bullets()))
	}
}

func TestRestartStepSpendsNoTime(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)
	w.phase = core.PhaseGameOver

	// With no frame ceiling, a stalled frame longer than the interval must
	// not tick the fresh round's difficulty clock.
	res := w.Step(Input{Restart: true}, 11*time.Second, testBounds)

	if res.State != (core.GameState{Score: 1, Phase: core.PhaseRunning}) {
		t.Errorf("state after restart step = %+v", res.State)
	}
	if len(w.Bullets()) != 1 {
		t.Errorf("bullets after restart step = %d, expected 1", len(w.Bullets()))
	}
	if hasEvent(res.Events, core.EventDifficultyTick) || hasEvent(res.Events, core.EventBulletSpawned) {
		t.Errorf("restart step should not tick difficulty, events = %v", res.Events)
	}
	if w.Player().Pos != NewPlayer(testBounds, 50, 400).Pos {
		t.Error("player should stay at the start position on the restart step")
	}
}

func TestCollisionEndsRound(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)
	p := w.Player()

	// Bullet touching the player's right edge
	w.bullets = []Bullet{{
		Pos:   core.Vec2{X: p.Pos.X + p.Size, Y: p.Pos.Y},
		Dir:   core.Vec2{X: 1, Y: 0},
		Speed: 0,
		Size:  10,
	}}

	res := w.Step(Input{}, frame, testBounds)
	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("touching bullet should end the round, phase = %s", res.State.Phase)
	}
	if !hasEvent(res.Events, core.EventCollision) {
		t.Error("expected a collision event")
	}

	// Game over is sticky: pause is ignored and nothing moves
	res = w.Step(Input{Pause: true, Right: true}, time.Second, testBounds)
	if res.State.Phase != core.PhaseGameOver {
		t.Errorf("pause should be ignored after game over, phase = %s", res.State.Phase)
	}
	if w.Player().Pos != p.Pos {
		t.Error("player should not move after game over")
	}

	res = w.Step(Input{Restart: true}, frame, testBounds)
	if res.State.Phase != core.PhaseRunning || res.State.Score != 1 || len(w.Bullets()) != 1 {
		t.Errorf("restart after game over: state %+v, %d bullets", res.State, len(w.Bullets()))
	}
}

func TestDifficultyTick(t *testing.T) {
	w := NewWorld(testConfig(), 1, testBounds)
	parkBullets(w, 2)
	w.bullets[0].Speed = 100
	w.bullets[1].Speed = 200

	// Exactly ten seconds is not enough
	res := w.Step(Input{}, 10*time.Second, testBounds)
	if hasEvent(res.Events, core.EventDifficultyTick) {
		t.Fatal("tick should not fire at exactly the interval")
	}

	// Keep the existing bullets parked while the clock runs over
	w.bullets[0].Dir, w.bullets[1].Dir = core.Vec2{}, core.Vec2{}
	res = w.Step(Input{}, frame, testBounds)
	if !hasEvent(res.Events, core.EventDifficultyTick) || !hasEvent(res.Events, core.EventBulletSpawned) {
		t.Fatalf("expected tick and spawn events, got %+v", res.Events)
	}
	if res.State.Score != 2 {
		t.Errorf("score = %d, expected 2", res.State.Score)
	}

	bullets := w.Bullets()
	if len(bullets) != 3 {
		t.Fatalf("bullets = %d, expected 3", len(bullets))
	}
	if math.Abs(bullets[0].Speed-110) > 1e-9 || math.Abs(bullets[1].Speed-220) > 1e-9 {
		t.Errorf("existing bullets should speed up by 1.1, got %f and %f", bullets[0].Speed, bullets[1].Speed)
	}
	if bullets[2].Speed != 200 {
		t.Errorf("new bullet should start at base speed, got %f", bullets[2].Speed)
	}
	if w.Difficulty().Elapsed() != 0 {
		t.Errorf("difficulty clock should restart, elapsed = %s", w.Difficulty().Elapsed())
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	w := NewWorld(cfg, 1, testBounds)
	parkBullets(w, 1)
	w.bullets[0].Dir = core.Vec2{}

	for i := 0; i < 10; i++ {
		w.Step(Input{}, 5*time.Second, testBounds)
	}
	if w.State().Score != 1 || len(w.Bullets()) != 1 {
		t.Errorf("fixed difficulty should never tick: score %d, %d bullets", w.State().Score, len(w.Bullets()))
	}
}

func TestFrameDeltaCeiling(t *testing.T) {
	cfg := config.Default() // 250ms ceiling
	w := NewWorld(cfg, 1, testBounds)
	parkBullets(w, 1)

	w.Step(Input{Left: true}, 10*time.Second, testBounds)
	if w.RunningTime() != 250*time.Millisecond {
		t.Errorf("running time = %s, expected the 250ms ceiling", w.RunningTime())
	}
	want := NewPlayer(testBounds, 50, 400).Pos.X - 400*0.25
	if math.Abs(w.Player().Pos.X-want) > 1e-9 {
		t.Errorf("player x = %f, expected %f", w.Player().Pos.X, want)
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() *World {
		w := NewWorld(testConfig(), 12345, testBounds)
		for i := 0; i < 3000; i++ {
			in := Input{Left: i%120 < 60, Right: i%120 >= 60, Up: i%90 < 30}
			if w.Step(in, frame, testBounds).State.GameOver() {
				break
			}
		}
		return w
	}

	a, b := run(), run()
	if a.State() != b.State() {
		t.Errorf("states differ: %+v vs %+v", a.State(), b.State())
	}
	if a.Frames() != b.Frames() {
		t.Errorf("frame counts differ: %d vs %d", a.Frames(), b.Frames())
	}
	if len(a.Bullets()) != len(b.Bullets()) {
		t.Fatalf("bullet counts differ: %d vs %d", len(a.Bullets()), len(b.Bullets()))
	}
	for i := range a.Bullets() {
		if a.Bullets()[i] != b.Bullets()[i] {
			t.Errorf("bullet %d differs", i)
		}
	}
}

func TestWorldInvariantsUnderPlay(t *testing.T) {
	w := NewWorld(testConfig(), 77, testBounds)
	p := w.Player()

	for i := 0; i < 5000; i++ {
		in := Input{Up: i%7 == 0, Down: i%11 == 0, Left: i%13 == 0, Right: i%3 == 0, Restart: true}
		w.Step(in, frame, testBounds)

		if len(w.Bullets()) == 0 {
			t.Fatalf("step %d: bullet list should never be observed empty", i)
		}
		pl := w.Player()
		if pl.Pos.X < 0 || pl.Pos.X > testBounds.W-p.Size || pl.Pos.Y < 0 || pl.Pos.Y > testBounds.H-p.Size {
			t.Fatalf("step %d: player %v outside arena", i, pl.Pos)
		}
		for j, b := range w.Bullets() {
			if b.Pos.X < 0 || b.Pos.X > testBounds.W || b.Pos.Y < 0 || b.Pos.Y > testBounds.H {
				t.Fatalf("step %d: bullet %d at %v outside arena", i, j, b.Pos)
			}
		}
	}
}

func TestWorldResizeKeepsEntitiesInside(t *testing.T) {
	w := NewWorld(testConfig(), 2, testBounds)
	parkBullets(w, 1)
	w.bullets[0].Pos = core.Vec2{X: 480, Y: 20}
	w.bullets[0].Dir = core.Vec2{}

	small := core.Bounds{W: 200, H: 200}
	w.Step(Input{}, 0, small)

	if b := w.Bullets()[0]; b.Pos.X > small.W {
		t.Errorf("bullet should be clamped into the smaller arena, got %v", b.Pos)
	}
	if p := w.Player(); p.Pos.X > small.W-p.Size || p.Pos.Y > small.H-p.Size {
		t.Errorf("player should be clamped into the smaller arena, got %v", p.Pos)
	}
}
