package sim

import "github.com/vovakirdan/bullet-time/internal/core"

// Player is the square the user steers around the arena.
type Player struct {
	Pos   core.Vec2 // Top-left corner
	Size  float64
	Speed float64 // Units per second
}

// NewPlayer places a player near the bottom middle of the arena.
func NewPlayer(bounds core.Bounds, size, speed float64) Player {
	p := Player{
		Pos:   core.Vec2{X: bounds.W/2 - size, Y: bounds.H - size*2},
		Size:  size,
		Speed: speed,
	}
	p.clamp(bounds)
	return p
}

// Move applies held direction flags for dt seconds and keeps the player
// fully inside the arena.
func (p *Player) Move(in Input, dt float64, bounds core.Bounds) {
	if dt > 0 {
		step := p.Speed * dt
		if in.Left {
			p.Pos.X -= step
		}
		if in.Right {
			p.Pos.X += step
		}
		if in.Up {
			p.Pos.Y -= step
		}
		if in.Down {
			p.Pos.Y += step
		}
	}
	p.clamp(bounds)
}

func (p *Player) clamp(bounds core.Bounds) {
	p.Pos.X = core.ClampF(p.Pos.X, 0, bounds.W-p.Size)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, bounds.H-p.Size)
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.Box{X: p.Pos.X, Y: p.Pos.Y, W: p.Size, H: p.Size}
}
