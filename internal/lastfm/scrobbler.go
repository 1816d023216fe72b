package lastfm

import (
	"time"

	"github.com/scrobl/vinyl/internal/album"
)

// Scrobbler adapts Client to the engine's scrobble contract.
type Scrobbler struct {
	client *Client
}

// NewScrobbler creates a Scrobbler backed by the given client.
func NewScrobbler(client *Client) *Scrobbler {
	return &Scrobbler{client: client}
}

// UpdateNowPlaying reports the track as currently playing.
func (s *Scrobbler) UpdateNowPlaying(t album.Track) error {
	return s.client.UpdateNowPlaying(ScrobbleTrack{
		Artist:          t.Artist,
		Track:           t.Title,
		Album:           t.Album,
		DurationSeconds: t.DurationSeconds,
	})
}

// Scrobble records a completed play of the track at ts.
func (s *Scrobbler) Scrobble(t album.Track, ts time.Time) error {
	return s.client.Scrobble(ScrobbleTrack{
		Artist:          t.Artist,
		Track:           t.Title,
		Album:           t.Album,
		DurationSeconds: t.DurationSeconds,
		Timestamp:       ts,
	})
}
