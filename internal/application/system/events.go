package system

// EventKind is a side effect the simulation asks the presentation layer to perform
type EventKind int

const (
	EventJump EventKind = iota
	EventLand
	EventLandMild
	EventFootstep
	EventKickHit
	EventKickMiss
	EventBoxBreak
	EventBoxLanded
	EventStopMovement
	EventMapChanged
	EventCleared
	EventGameOver
	EventRespawn
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "Jump"
	case EventLand:
		return "Land"
	case EventLandMild:
		return "LandMild"
	case EventFootstep:
		return "Footstep"
	case EventKickHit:
		return "KickHit"
	case EventKickMiss:
		return "KickMiss"
	case EventBoxBreak:
		return "BoxBreak"
	case EventBoxLanded:
		return "BoxLanded"
	case EventStopMovement:
		return "StopMovement"
	case EventMapChanged:
		return "MapChanged"
	case EventCleared:
		return "Cleared"
	case EventGameOver:
		return "GameOver"
	case EventRespawn:
		return "Respawn"
	default:
		return "Unknown"
	}
}

// Event is one side effect produced during a tick.
// Value carries the footstep index for EventFootstep, the obstacle id for
// EventKickHit and EventBoxBreak, and the new map index for EventMapChanged.
// EventLand is a landing on an obstacle, EventLandMild one on the ground.
type Event struct {
	Kind  EventKind
	Value int
}

// HasEvent reports whether events contains kind
func HasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
