package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/typeracer/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Cue timings.
const (
	chimeNoteDuration = 70 * time.Millisecond
	buzzDuration      = 220 * time.Millisecond
	coinNote1Duration = 60 * time.Millisecond
	coinNote2Duration = 180 * time.Millisecond
	attack            = 5 * time.Millisecond
	release           = 40 * time.Millisecond
	musicNoteDuration = 250 * time.Millisecond
)

// musicNotes is the background arpeggio, one bar of A minor and F major.
var musicNotes = []float64{
	220.00, 261.63, 329.63, 261.63,
	174.61, 220.00, 261.63, 220.00,
}

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of samples.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

// setVolume sets a linear gain on v.
// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(vol)
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// chime is a rising two-note sine played for a typed word.
func chime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(880.0, chimeNoteDuration, WaveSine, rate),
		tone(1318.51, chimeNoteDuration, WaveSine, rate),
	)
}

// buzz is a low sawtooth played when a life is lost.
func buzz(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110.0, buzzDuration, WaveSaw, rate), 0.6)
}

// coin is a square-wave blip pair played for a purchase.
func coin(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(987.77, coinNote1Duration, WaveSquare, rate),
		tone(1318.51, coinNote2Duration, WaveSquare, rate),
	), 0.5)
}

// music renders the background arpeggio once and loops it forever.
func music(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(musicNotes))
	for i, f := range musicNotes {
		notes[i] = tone(f, musicNoteDuration, WaveSine, rate)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(newVolume(beep.Seq(notes...), 0.4))
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// Cue builds the sound for an event at the given volume, or nil when the
// event has no sound.
func Cue(ev core.Event, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch ev.Type {
	case core.EventWordTyped:
		s = chime(rate)
	case core.EventLifeLost:
		s = buzz(rate)
	case core.EventPurchase:
		s = coin(rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}
