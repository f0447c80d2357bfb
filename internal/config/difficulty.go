package config

import (
	"math"
	"time"
)

// DifficultyManager tracks running time and decides when a difficulty tick
// fires. It only advances while the caller feeds it running time.
type DifficultyManager struct {
	cfg     DifficultyConfig
	elapsed time.Duration // Running time since the last tick
	ticks   int           // Ticks fired since the last reset
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Interval > 0
}

// Advance adds running time and reports whether a tick fired.
// At most one tick fires per call; the clock restarts from zero afterwards,
// dropping any excess beyond the interval.
func (d *DifficultyManager) Advance(dt time.Duration) bool {
	if !d.IsEnabled() || dt <= 0 {
		return false
	}
	d.elapsed += dt
	if d.elapsed <= d.cfg.Interval {
		return false
	}
	d.elapsed = 0
	d.ticks++
	return true
}

// Reset restarts the clock and forgets previous ticks.
func (d *DifficultyManager) Reset() {
	d.elapsed = 0
	d.ticks = 0
}

// Elapsed returns running time since the last tick.
func (d *DifficultyManager) Elapsed() time.Duration {
	return d.elapsed
}

// Ticks returns the number of ticks since the last reset.
func (d *DifficultyManager) Ticks() int {
	return d.ticks
}

// Multiplier returns the per-tick speed multiplier.
func (d *DifficultyManager) Multiplier() float64 {
	return d.cfg.SpeedMultiplier
}

// Speed returns the speed of a bullet that has lived through every tick so
// far, starting at baseSpeed.
func (d *DifficultyManager) Speed(baseSpeed float64) float64 {
	return baseSpeed * math.Pow(d.cfg.SpeedMultiplier, float64(d.ticks))
}
