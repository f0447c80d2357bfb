package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bullettime.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/bullettime.yaml.
func Default() BulletTimeConfig {
	return BulletTimeConfig{
		Player: PlayerConfig{
			Size:  50,
			Speed: 400,
		},
		Bullets: BulletConfig{
			Size:  10,
			Speed: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			Interval:        10 * time.Second,
			SpeedMultiplier: 1.1,
		},
		Input: InputConfig{
			InitialHold: 400 * time.Millisecond,
			Hold:        150 * time.Millisecond,
		},
		Timing: TimingConfig{
			MaxFrameDelta: 250 * time.Millisecond,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
