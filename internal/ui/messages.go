package ui

import (
	"github.com/scrobl/vinyl/internal/album"
	"github.com/scrobl/vinyl/internal/engine"
)

// Engine events, re-typed as tea messages.

// StateChangedMsg mirrors engine.StateChange.
type StateChangedMsg engine.StateChange

// TrackChangedMsg mirrors engine.TrackChange.
type TrackChangedMsg engine.TrackChange

// ProgressMsg mirrors engine.Progress.
type ProgressMsg engine.Progress

// AlbumEndedMsg is sent when the album finishes.
type AlbumEndedMsg struct{}

// EngineErrorMsg carries a best-effort external-call failure.
type EngineErrorMsg engine.ErrorEvent

// engineClosedMsg is sent when the engine shuts down.
type engineClosedMsg struct{}

// AlbumLoadedMsg contains the result of fetching and resolving a release.
type AlbumLoadedMsg struct {
	Tracks *album.TrackList
	Input  string // what the user typed, for error context
	Err    error
}
