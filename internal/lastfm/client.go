// Package lastfm wraps the Last.fm API for scrobbling and track metadata.
package lastfm

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shkh/lastfm-go/lastfm"
)

// ErrNotAuthenticated is returned when an operation requires authentication.
var ErrNotAuthenticated = errors.New("not authenticated")

// Client wraps the Last.fm API for scrobbling operations.
type Client struct {
	api       *lastfm.Api
	apiKey    string
	apiSecret string
	loggedIn  bool
}

// New creates a new Last.fm client with the given API credentials.
func New(apiKey, apiSecret string) *Client {
	return &Client{
		api:       lastfm.New(apiKey, apiSecret),
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// Login authenticates with username and password (mobile session flow).
func (c *Client) Login(username, password string) error {
	if err := c.api.Login(username, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.loggedIn = true
	return nil
}

// IsAuthenticated returns true if a session has been established.
func (c *Client) IsAuthenticated() bool {
	return c.loggedIn
}

// UpdateNowPlaying sends a "now playing" notification to Last.fm.
func (c *Client) UpdateNowPlaying(track ScrobbleTrack) error {
	if !c.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	params := lastfm.P{
		"artist": track.Artist,
		"track":  track.Track,
	}
	if track.Album != "" {
		params["album"] = track.Album
	}
	if track.DurationSeconds > 0 {
		params["duration"] = track.DurationSeconds
	}

	_, err := c.api.Track.UpdateNowPlaying(params)
	if err != nil {
		return fmt.Errorf("update now playing: %w", err)
	}
	return nil
}

// Scrobble submits a track play to Last.fm.
func (c *Client) Scrobble(track ScrobbleTrack) error {
	if !c.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	params := lastfm.P{
		"artist":    track.Artist,
		"track":     track.Track,
		"timestamp": track.Timestamp.Unix(),
	}
	if track.Album != "" {
		params["album"] = track.Album
	}
	if track.DurationSeconds > 0 {
		params["duration"] = track.DurationSeconds
	}

	_, err := c.api.Track.Scrobble(params)
	if err != nil {
		return fmt.Errorf("scrobble: %w", err)
	}
	return nil
}

// TrackDuration fetches a track's length in milliseconds via track.getInfo.
// Returns an error when the track is unknown or carries no duration.
func (c *Client) TrackDuration(artist, title string) (int, error) {
	result, err := c.api.Track.GetInfo(lastfm.P{
		"artist": artist,
		"track":  title,
	})
	if err != nil {
		return 0, fmt.Errorf("track get info: %w", err)
	}
	if result.Duration == "" {
		return 0, errors.New("track has no duration")
	}
	ms, err := strconv.Atoi(result.Duration)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", result.Duration, err)
	}
	return ms, nil
}
