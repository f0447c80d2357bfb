package sim

import "github.com/vovakirdan/bullet-time/internal/core"

// Input is the per-frame flag set the host hands to Step.
// Movement flags are held state; Pause and Restart are set only on the frame
// the key went down.
type Input struct {
	Up, Down, Left, Right bool
	Pause                 bool
	Restart               bool
}

// InputFromFrame converts a platform input frame to simulation flags.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Up:      f.Has(core.ActionUp),
		Down:    f.Has(core.ActionDown),
		Left:    f.Has(core.ActionLeft),
		Right:   f.Has(core.ActionRight),
		Pause:   f.Has(core.ActionPause),
		Restart: f.Has(core.ActionRestart),
	}
}
