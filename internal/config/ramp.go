package config

import (
	"math"

	"github.com/vovakirdan/typeracer/internal/core"
)

// SpawnRamp turns the game's difficulty ramp into spawn intervals.
// The ramp itself is game state; SpawnRamp only knows the rules for
// growing, halving and applying it.
type SpawnRamp struct {
	cfg SpawnConfig
}

// NewSpawnRamp creates a ramp calculator for the given spawn settings.
func NewSpawnRamp(cfg SpawnConfig) *SpawnRamp {
	return &SpawnRamp{cfg: cfg}
}

// MaxRamp is the largest ramp that keeps the interval lower bound at or
// above the configured floor.
func (r *SpawnRamp) MaxRamp() float64 {
	return math.Max(0, r.cfg.BaseMin-r.cfg.IntervalFloor)
}

// Interval returns the [lo, hi) range the next spawn delay is drawn from.
func (r *SpawnRamp) Interval(ramp float64) (lo, hi float64) {
	ramp = core.ClampF(ramp, 0, r.MaxRamp())
	return r.cfg.BaseMin - ramp, r.cfg.BaseMax - ramp
}

// Advance returns the ramp after one more spawn.
func (r *SpawnRamp) Advance(ramp float64) float64 {
	return core.ClampF(ramp+r.cfg.RampStep, 0, r.MaxRamp())
}

// Halve returns the ramp after a slow-spawn purchase.
func (r *SpawnRamp) Halve(ramp float64) float64 {
	return ramp / 2
}

// InitialDelay is the countdown before the first word.
func (r *SpawnRamp) InitialDelay() float64 {
	return r.cfg.InitialDelay
}
