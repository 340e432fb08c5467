package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSampleRate = 44100

func TestSynthesize_AllSounds(t *testing.T) {
	for _, id := range AllSounds() {
		t.Run(id.String(), func(t *testing.T) {
			pcm, err := Synthesize(id, testSampleRate, 0.6)
			require.NoError(t, err)

			assert.NotEmpty(t, pcm)
			assert.Zero(t, len(pcm)%BytesPerFrame, "whole stereo frames")

			frames := len(pcm) / BytesPerFrame
			assert.Less(t, frames, testSampleRate, "clips are under a second")

			peak := 0
			for i := 0; i < len(pcm); i += 2 {
				v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
			assert.Greater(t, peak, 0, "clip is not silent")
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	a, err := Synthesize(SoundKickHit, testSampleRate, 1)
	require.NoError(t, err)
	b, err := Synthesize(SoundKickHit, testSampleRate, 1)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSynthesize_Duration(t *testing.T) {
	pcm, err := Synthesize(SoundJump, testSampleRate, 1)
	require.NoError(t, err)

	// 40ms + 70ms
	want := testSampleRate*40/1000 + testSampleRate*70/1000
	assert.InDelta(t, want, len(pcm)/BytesPerFrame, 2)
}

func TestSynthesize_Mute(t *testing.T) {
	pcm, err := Synthesize(SoundBoxBreak, testSampleRate, 0)
	require.NoError(t, err)

	for _, b := range pcm {
		if b != 0 {
			t.Fatalf("muted clip has non-zero sample data")
		}
	}
}

func TestSynthesize_Errors(t *testing.T) {
	_, err := Synthesize(SoundID(99), testSampleRate, 1)
	assert.Error(t, err)

	_, err = Synthesize(SoundJump, 0, 1)
	assert.Error(t, err)
}

func TestFootstep(t *testing.T) {
	assert.Equal(t, SoundFootstep1, Footstep(0))
	assert.Equal(t, SoundFootstep2, Footstep(1))
	assert.Equal(t, SoundFootstep4, Footstep(3))
	assert.Equal(t, SoundFootstep1, Footstep(4))
}

func TestRecordingSink(t *testing.T) {
	var sink Sink = &RecordingSink{}
	sink.Play(SoundJump)
	sink.Play(SoundKickMiss)
	sink.StopAll()

	rec := sink.(*RecordingSink)
	assert.Equal(t, []SoundID{SoundJump, SoundKickMiss}, rec.Played)
	assert.Equal(t, 1, rec.Stops)

	rec.Reset()
	assert.Empty(t, rec.Played)

	var null Sink = NullSink{}
	null.Play(SoundGameOver)
	null.StopAll()
}
