package replay

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records the held keys for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	K bool `json:"k,omitempty"` // Kick
}

// ReplayData contains all data needed to replay a game session.
// The simulation has no randomness, so the map list and the inputs are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Maps      []string     `json:"maps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
