// Package config provides YAML-based game configuration loading and
// difficulty management for Bullet Time.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// BulletTimeConfig contains all configuration for the game.
type BulletTimeConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Timing     TimingConfig     `yaml:"timing"`
	Render     RenderConfig     `yaml:"render"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`  // Edge length in arena units
	Speed float64 `yaml:"speed"` // Units per second
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Initial speed, units per second
}

// DifficultyConfig defines the periodic difficulty tick. Each tick always
// adds one bullet and one point.
type DifficultyConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Interval        time.Duration `yaml:"interval"`         // Running time between ticks
	SpeedMultiplier float64       `yaml:"speed_multiplier"` // Applied to every existing bullet per tick
}

// InputConfig controls held-key emulation for terminals that do not
// report key release. A first press counts as held for InitialHold, which
// covers the terminal's auto-repeat delay; each repeat extends it by Hold.
type InputConfig struct {
	InitialHold time.Duration `yaml:"initial_hold"`
	Hold        time.Duration `yaml:"hold"`
}

// TimingConfig controls frame delta handling.
type TimingConfig struct {
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // 0 disables the ceiling
}

// RenderConfig maps terminal cells to arena units.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate checks that every value is usable by the simulation.
func (c BulletTimeConfig) Validate() error {
	switch {
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player.size must be positive, got %v", ErrInvalid, c.Player.Size)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player.speed must not be negative, got %v", ErrInvalid, c.Player.Speed)
	case c.Bullets.Size <= 0:
		return fmt.Errorf("%w: bullets.size must be positive, got %v", ErrInvalid, c.Bullets.Size)
	case c.Bullets.Speed < 0:
		return fmt.Errorf("%w: bullets.speed must not be negative, got %v", ErrInvalid, c.Bullets.Speed)
	case c.Difficulty.Enabled && c.Difficulty.Interval <= 0:
		return fmt.Errorf("%w: difficulty.interval must be positive, got %s", ErrInvalid, c.Difficulty.Interval)
	case c.Difficulty.SpeedMultiplier <= 0:
		return fmt.Errorf("%w: difficulty.speed_multiplier must be positive, got %v", ErrInvalid, c.Difficulty.SpeedMultiplier)
	case c.Input.Hold < 0:
		return fmt.Errorf("%w: input.hold must not be negative, got %s", ErrInvalid, c.Input.Hold)
	case c.Input.InitialHold < 0:
		return fmt.Errorf("%w: input.initial_hold must not be negative, got %s", ErrInvalid, c.Input.InitialHold)
	case c.Timing.MaxFrameDelta < 0:
		return fmt.Errorf("%w: timing.max_frame_delta must not be negative, got %s", ErrInvalid, c.Timing.MaxFrameDelta)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: render cell size must be positive, got %vx%v", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "keep whatever the config file says" and is returned as "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BulletTimeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Interval = 15 * time.Second
		cfg.Difficulty.SpeedMultiplier = 1.05
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Interval = 10 * time.Second
		cfg.Difficulty.SpeedMultiplier = 1.1
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Interval = 6 * time.Second
		cfg.Difficulty.SpeedMultiplier = 1.15
		cfg.Bullets.Speed *= 1.25
	}
}
