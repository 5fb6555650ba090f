// Package audio plays looping background music and turns game events into
// short synthesised sound cues.
package audio

import (
	"math"

	"github.com/vovakirdan/typeracer/internal/core"
)

// Volume settings shared by every player.
const (
	InitialVolume = 0.05
	VolumeStep    = 0.005
	MaxVolume     = 1.0
)

// Player consumes game events and plays a cue for each.
// Implementations must be safe to call from the UI goroutine.
type Player interface {
	Play(ev core.Event)
	VolumeUp()
	VolumeDown()
	Volume() float64
	Close()
}

// Silent is a Player that tracks volume but never makes a sound.
// It backs SSH sessions, --mute, and machines without an audio device.
type Silent struct {
	volume float64
}

// NewSilent returns a silent player at the initial volume.
func NewSilent() *Silent {
	return &Silent{volume: InitialVolume}
}

func (s *Silent) Play(core.Event) {}

func (s *Silent) VolumeUp() {
	s.volume = stepVolume(s.volume, VolumeStep)
}

func (s *Silent) VolumeDown() {
	s.volume = stepVolume(s.volume, -VolumeStep)
}

func (s *Silent) Volume() float64 {
	return s.volume
}

func (s *Silent) Close() {}

// stepVolume moves v by delta. A step that would leave [0, MaxVolume] is
// ignored rather than clamped, so the volume only ever moves by whole steps.
func stepVolume(v, delta float64) float64 {
	next := v + delta
	// Rounding keeps repeated steps from drifting off the step grid.
	next = math.Round(next/VolumeStep) * VolumeStep
	if next < 0 || next > MaxVolume {
		return v
	}
	return next
}

var (
	_ Player = (*Silent)(nil)
	_ Player = (*SoundManager)(nil)
)
