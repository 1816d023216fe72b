package lastfm

import "time"

// ScrobbleTrack contains track metadata for scrobbling.
type ScrobbleTrack struct {
	Artist          string
	Track           string
	Album           string
	DurationSeconds int
	Timestamp       time.Time // when the play completed
}
