// Package sim implements the Bullet Time simulation step: bullet and player
// kinematics, collision detection, the difficulty clock and the
// running/paused/game-over state machine. It has no terminal or timing
// dependencies; the host feeds it input flags, a frame delta and the current
// window bounds once per frame.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/bullet-time/internal/core"
)

// Edge identifies the side of the arena a bullet enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Bullet is a square projectile bouncing inside the arena.
type Bullet struct {
	Pos   core.Vec2 // Top-left corner
	Dir   core.Vec2 // Unit direction
	Speed float64   // Units per second
	Size  float64
}

// Spawn creates a bullet on a random edge of the arena, heading inward.
// The inward direction component is drawn from [1, 100] and the tangential
// one from [-100, 99] before normalizing, so every bullet has the same speed
// regardless of the edge it starts on.
func Spawn(rng *rand.Rand, bounds core.Bounds, speed, size float64) Bullet {
	edge := Edge(rng.Intn(4))
	inward := float64(rng.Intn(100) + 1)
	tangent := float64(rng.Intn(200) - 100)

	var pos, dir core.Vec2
	switch edge {
	case EdgeLeft:
		pos = core.Vec2{X: 0, Y: rng.Float64() * bounds.H}
		dir = core.Vec2{X: inward, Y: tangent}
	case EdgeRight:
		pos = core.Vec2{X: bounds.W, Y: rng.Float64() * bounds.H}
		dir = core.Vec2{X: -inward, Y: tangent}
	case EdgeTop:
		pos = core.Vec2{X: rng.Float64() * bounds.W, Y: 0}
		dir = core.Vec2{X: tangent, Y: inward}
	default:
		pos = core.Vec2{X: rng.Float64() * bounds.W, Y: bounds.H}
		dir = core.Vec2{X: tangent, Y: -inward}
	}

	return Bullet{
		Pos:   pos,
		Dir:   dir.Normalize(),
		Speed: speed,
		Size:  size,
	}
}

// Advance moves the bullet by dt seconds. When the next position leaves
// [0, W] on an axis, the position is clamped to that boundary and the
// direction component on that axis is reflected. Negative dt is treated as
// zero, which still pulls a bullet back inside bounds that shrank.
func (b *Bullet) Advance(dt float64, bounds core.Bounds) {
	if !(dt > 0) {
		dt = 0
	}
	next := b.Pos.Add(b.Dir.Scale(b.Speed * dt))

	if next.X < 0 || next.X > bounds.W {
		b.Dir.X = -b.Dir.X
		next.X = core.ClampF(next.X, 0, bounds.W)
	}
	if next.Y < 0 || next.Y > bounds.H {
		b.Dir.Y = -b.Dir.Y
		next.Y = core.ClampF(next.Y, 0, bounds.H)
	}
	b.Pos = next
}

// ApplyDifficulty scales the bullet speed by mult.
func (b *Bullet) ApplyDifficulty(mult float64) {
	b.Speed *= mult
}

// Box returns the bullet's collision box.
func (b Bullet) Box() core.Box {
	return core.Box{X: b.Pos.X, Y: b.Pos.Y, W: b.Size, H: b.Size}
}
