package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// BytesPerFrame is the size of one 16-bit stereo sample frame
const BytesPerFrame = 4

// tone is one enveloped oscillator note
type tone struct {
	freq    float64
	dur     time.Duration
	wave    WaveType
	gain    float64
	attack  time.Duration
	release time.Duration
}

// step is a group of tones mixed together; a recipe plays its steps in sequence
type step []tone

var recipes = map[SoundID][]step{
	SoundJump: {
		{{freq: 330, dur: 40 * time.Millisecond, wave: WaveSquare, gain: 0.35, attack: 2 * time.Millisecond, release: 10 * time.Millisecond}},
		{{freq: 494, dur: 70 * time.Millisecond, wave: WaveSquare, gain: 0.35, attack: 2 * time.Millisecond, release: 40 * time.Millisecond}},
	},
	SoundLandMild: {
		{{dur: 50 * time.Millisecond, wave: WaveNoise, gain: 0.25, attack: time.Millisecond, release: 40 * time.Millisecond}},
	},
	SoundKickHit: {
		{
			{dur: 60 * time.Millisecond, wave: WaveNoise, gain: 0.5, attack: time.Millisecond, release: 50 * time.Millisecond},
			{freq: 110, dur: 90 * time.Millisecond, wave: WaveSine, gain: 0.6, attack: time.Millisecond, release: 70 * time.Millisecond},
		},
	},
	SoundKickMiss: {
		{{dur: 40 * time.Millisecond, wave: WaveNoise, gain: 0.2, attack: 5 * time.Millisecond, release: 30 * time.Millisecond}},
	},
	SoundFootstep1: footstep(180),
	SoundFootstep2: footstep(200),
	SoundFootstep3: footstep(170),
	SoundFootstep4: footstep(210),
	SoundBoxDown: {
		{
			{freq: 90, dur: 120 * time.Millisecond, wave: WaveSine, gain: 0.7, attack: time.Millisecond, release: 100 * time.Millisecond},
			{dur: 50 * time.Millisecond, wave: WaveNoise, gain: 0.2, attack: time.Millisecond, release: 40 * time.Millisecond},
		},
	},
	SoundBoxBreak: {
		{{dur: 80 * time.Millisecond, wave: WaveNoise, gain: 0.6, attack: time.Millisecond, release: 60 * time.Millisecond}},
		{{freq: 140, dur: 100 * time.Millisecond, wave: WaveSaw, gain: 0.4, attack: time.Millisecond, release: 80 * time.Millisecond}},
	},
	SoundGameOver: {
		{{freq: 392, dur: 150 * time.Millisecond, wave: WaveSquare, gain: 0.3, attack: 5 * time.Millisecond, release: 40 * time.Millisecond}},
		{{freq: 330, dur: 150 * time.Millisecond, wave: WaveSquare, gain: 0.3, attack: 5 * time.Millisecond, release: 40 * time.Millisecond}},
		{{freq: 262, dur: 150 * time.Millisecond, wave: WaveSquare, gain: 0.3, attack: 5 * time.Millisecond, release: 40 * time.Millisecond}},
		{{freq: 196, dur: 300 * time.Millisecond, wave: WaveSquare, gain: 0.3, attack: 5 * time.Millisecond, release: 200 * time.Millisecond}},
	},
}

func footstep(freq float64) []step {
	return []step{{
		{freq: freq, dur: 30 * time.Millisecond, wave: WaveSine, gain: 0.3, attack: time.Millisecond, release: 25 * time.Millisecond},
		{dur: 20 * time.Millisecond, wave: WaveNoise, gain: 0.1, attack: time.Millisecond, release: 15 * time.Millisecond},
	}}
}

// Synthesize renders a sound effect as 16-bit little-endian stereo PCM.
// Noise is seeded per sound, so the same id always renders the same bytes.
func Synthesize(id SoundID, sampleRate int, volume float64) ([]byte, error) {
	recipe, ok := recipes[id]
	if !ok {
		return nil, fmt.Errorf("no recipe for sound %s", id)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	rate := beep.SampleRate(sampleRate)
	rng := rand.New(rand.NewSource(int64(id) + 1))

	steps := make([]beep.Streamer, 0, len(recipe))
	for _, st := range recipe {
		layers := make([]beep.Streamer, 0, len(st))
		for _, t := range st {
			osc := newOscillator(t.freq, t.dur, t.wave, rate, rng)
			layers = append(layers, newVolume(newEnvelope(osc, t.dur, t.attack, t.release, rate), t.gain))
		}
		steps = append(steps, beep.Mix(layers...))
	}

	return render(newVolume(beep.Seq(steps...), volume)), nil
}

func render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, BytesPerFrame)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(sample[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(sample[1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
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
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
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

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		if vol < 0 {
			vol = 0
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. A zero gain is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
