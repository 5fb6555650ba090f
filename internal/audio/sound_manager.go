package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/typeracer/internal/core"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bufferLength = 100 * time.Millisecond
)

// SoundManager plays background music and cues through the system speaker.
type SoundManager struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *effects.Volume
	volume float64
	closed bool
}

// NewSoundManager initializes the speaker and starts the mixer with the
// background music looping at the initial volume.
func NewSoundManager() (*SoundManager, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return nil, err
	}

	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		music:  newVolume(music(sampleRate), InitialVolume),
		volume: InitialVolume,
	}
	sm.mixer.Add(sm.music)
	speaker.Play(sm.mixer)
	return sm, nil
}

// Open returns a speaker-backed player, or a silent one when muted or when
// no audio device is available.
func Open(mute bool, logger *log.Logger) Player {
	if mute {
		return NewSilent()
	}
	sm, err := NewSoundManager()
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
		return NewSilent()
	}
	return sm
}

// Play queues the cue for ev, if it has one.
func (sm *SoundManager) Play(ev core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.closed {
		return
	}
	cue := Cue(ev, sm.volume, sampleRate)
	if cue == nil {
		return
	}

	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}

func (sm *SoundManager) VolumeUp() {
	sm.changeVolume(VolumeStep)
}

func (sm *SoundManager) VolumeDown() {
	sm.changeVolume(-VolumeStep)
}

// changeVolume steps the volume and applies it to the playing music.
// Cues already queued keep the volume they started with.
func (sm *SoundManager) changeVolume(delta float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = stepVolume(sm.volume, delta)
	if sm.closed {
		return
	}
	speaker.Lock()
	setVolume(sm.music, sm.volume)
	speaker.Unlock()
}

func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Close stops the music and pending cues and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.closed {
		return
	}
	sm.closed = true

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
