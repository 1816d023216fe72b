package engine

import (
	"github.com/scrobl/vinyl/internal/album"
	"github.com/scrobl/vinyl/internal/errmsg"
)

// StateChange is emitted when the engine moves between states.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the current track changes or its playing
// status flips: album load, playback start, automatic advance, previous,
// and direct selection all emit it.
type TrackChange struct {
	Track   album.Track
	Index   int
	Playing bool
}

// Progress is emitted once per second while playing.
type Progress struct {
	Elapsed int // seconds into the current track
	Total   int // track length in seconds
}

// AlbumEnded is emitted when the last track finishes naturally (or via skip).
type AlbumEnded struct{}

// ErrorEvent is emitted when a best-effort external call fails. These never
// affect the state machine; they exist for display and logging.
type ErrorEvent struct {
	Op  errmsg.Op
	Err error
}
