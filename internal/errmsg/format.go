// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Album operations
	OpAlbumLoad    Op = "load album"
	OpReleaseFetch Op = "fetch release"

	// Playback operations
	OpPlaybackToggle Op = "toggle playback"
	OpTrackNext      Op = "skip to next track"
	OpTrackPrevious  Op = "skip to previous track"
	OpTrackSelect    Op = "select track"

	// Last.fm operations
	OpLastfmLogin    Op = "log in to Last.fm"
	OpNowPlaying     Op = "update now playing"
	OpScrobble       Op = "submit scrobble"
	OpDurationLookup Op = "look up track duration"

	// Environment
	OpConfigLoad Op = "load configuration"
	OpNotify     Op = "send notification"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
