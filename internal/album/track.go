// Package album models a loaded catalog release as an immutable track list.
package album

import "errors"

var (
	// ErrEmptyAlbum is returned when a release yields no playable tracks.
	ErrEmptyAlbum = errors.New("album has no playable tracks")
	// ErrIndexOutOfRange is returned for an invalid track index.
	ErrIndexOutOfRange = errors.New("track index out of range")
)

// Track is one playable entry of a loaded release.
// Immutable once constructed; DurationSeconds is always >= 1.
type Track struct {
	Position        string // catalog ordering key, e.g. "A1", "B2", "3"
	Title           string
	Artist          string // inherited from the release
	Album           string // inherited from the release
	DurationSeconds int
	DurationDisplay string // M:SS or H:MM:SS, consistent with DurationSeconds
}
