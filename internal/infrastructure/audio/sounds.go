// Package audio synthesises the game's sound effects and plays them.
package audio

// SoundID identifies a sound effect
type SoundID int

const (
	SoundJump SoundID = iota
	SoundLandMild
	SoundKickHit
	SoundKickMiss
	SoundFootstep1
	SoundFootstep2
	SoundFootstep3
	SoundFootstep4
	SoundBoxDown
	SoundBoxBreak
	SoundGameOver
	soundCount
)

// String returns the string representation of the sound id
func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "Jump"
	case SoundLandMild:
		return "LandMild"
	case SoundKickHit:
		return "KickHit"
	case SoundKickMiss:
		return "KickMiss"
	case SoundFootstep1:
		return "Footstep1"
	case SoundFootstep2:
		return "Footstep2"
	case SoundFootstep3:
		return "Footstep3"
	case SoundFootstep4:
		return "Footstep4"
	case SoundBoxDown:
		return "BoxDown"
	case SoundBoxBreak:
		return "BoxBreak"
	case SoundGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// AllSounds returns every sound id in order
func AllSounds() []SoundID {
	ids := make([]SoundID, 0, soundCount)
	for id := SoundID(0); id < soundCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Footstep returns the footstep sound for a step in the walk cycle
func Footstep(step int) SoundID {
	if step < 0 {
		step = -step
	}
	return SoundFootstep1 + SoundID(step%4)
}

// Sink plays sound effects. Play never blocks and never fails.
type Sink interface {
	Play(id SoundID)
	StopAll()
}

// NullSink discards every sound
type NullSink struct{}

// Play does nothing
func (NullSink) Play(SoundID) {}

// StopAll does nothing
func (NullSink) StopAll() {}

// RecordingSink remembers what was played
type RecordingSink struct {
	Played []SoundID
	Stops  int
}

// Play records id
func (r *RecordingSink) Play(id SoundID) {
	r.Played = append(r.Played, id)
}

// StopAll counts the call
func (r *RecordingSink) StopAll() {
	r.Stops++
}

// Reset forgets everything recorded so far
func (r *RecordingSink) Reset() {
	r.Played = nil
	r.Stops = 0
}
