package engine

// State represents the playback state.
type State int

const (
	// StateIdle means no album is loaded.
	StateIdle State = iota
	// StateStopped means an album is loaded but the countdown is not running.
	StateStopped
	// StatePlaying means the current track's countdown is running.
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
