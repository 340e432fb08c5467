package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/boxkick/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Jump:  fi.J,
		Kick:  fi.K,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Maps returns the map list the recording was made with
func (r *Replayer) Maps() []string {
	return r.data.Maps
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Source adapts a Replayer to system.InputSource.
// Once the frames run out it reports Exit on every poll.
type Source struct {
	replayer *Replayer
}

// NewSource creates an input source playing back data
func NewSource(data ReplayData) *Source {
	return &Source{replayer: NewReplayer(data)}
}

// Poll returns the next recorded input
func (s *Source) Poll() system.InputState {
	in, ok := s.replayer.GetInput()
	if !ok {
		return system.InputState{Exit: true}
	}
	return in
}

// Replayer returns the underlying replayer
func (s *Source) Replayer() *Replayer {
	return s.replayer
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Maps:      []string{"test"},
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
