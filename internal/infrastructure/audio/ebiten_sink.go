package audio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenSink plays pre-rendered clips through an ebiten audio context.
// Every Play starts a new player, so overlapping sounds mix.
type EbitenSink struct {
	context *audio.Context
	clips   map[SoundID][]byte
	playing []*audio.Player
}

// NewEbitenSink renders every sound and binds the process audio context
func NewEbitenSink(sampleRate int, volume float64) (*EbitenSink, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	} else if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz, want %d", ctx.SampleRate(), sampleRate)
	}

	clips := make(map[SoundID][]byte, soundCount)
	for _, id := range AllSounds() {
		pcm, err := Synthesize(id, sampleRate, volume)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s: %w", id, err)
		}
		clips[id] = pcm
	}

	return &EbitenSink{
		context: ctx,
		clips:   clips,
	}, nil
}

// Play starts the clip for id
func (s *EbitenSink) Play(id SoundID) {
	clip, ok := s.clips[id]
	if !ok {
		return
	}
	s.prune()

	player := s.context.NewPlayerFromBytes(clip)
	player.Play()
	s.playing = append(s.playing, player)
}

// StopAll stops and releases every running clip
func (s *EbitenSink) StopAll() {
	for _, p := range s.playing {
		p.Pause()
		_ = p.Close()
	}
	s.playing = s.playing[:0]
}

func (s *EbitenSink) prune() {
	kept := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	s.playing = kept
}
