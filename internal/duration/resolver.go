// Package duration resolves track lengths from catalog data, falling back to
// an external metadata lookup and finally to a fixed default.
package duration

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultSeconds is used when neither the catalog nor the lookup
	// service yields a usable length.
	DefaultSeconds = 210
	defaultDisplay = "3:30"
)

// Lookup queries an external metadata service for a track length in
// milliseconds. Any failure (not found, network, bad data) is non-fatal to
// resolution.
type Lookup interface {
	TrackDuration(artist, title string) (ms int, err error)
}

// Resolver resolves track durations. A nil Lookup skips straight from
// catalog parsing to the default.
type Resolver struct {
	lookup Lookup
	log    *zap.Logger
}

// NewResolver creates a Resolver backed by the given lookup service.
func NewResolver(lookup Lookup, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{lookup: lookup, log: log}
}

// Resolve produces a validated duration for a track. First success wins:
// the catalog's own duration string, then the lookup service, then the
// default. The returned seconds are always >= 1.
func (r *Resolver) Resolve(catalogDuration, artist, title string) (int, string) {
	if secs, ok := parseCatalogDuration(catalogDuration); ok {
		// Keep the catalog's own formatting for display.
		return secs, strings.TrimSpace(catalogDuration)
	}

	if r.lookup != nil {
		ms, err := r.lookup.TrackDuration(artist, title)
		switch {
		case err != nil:
			r.log.Warn("duration lookup failed",
				zap.String("artist", artist),
				zap.String("title", title),
				zap.Error(err))
		case ms > 0:
			secs := max(ms/1000, 1)
			return secs, FormatSeconds(secs)
		}
	}

	r.log.Info("using default duration",
		zap.String("artist", artist),
		zap.String("title", title))
	return DefaultSeconds, defaultDisplay
}

// parseCatalogDuration parses M:SS or H:MM:SS. Anything else, including the
// empty string, is treated as absent.
func parseCatalogDuration(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	secs := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, false
		}
		secs = secs*60 + n
	}
	// Keep later percentage math well-defined.
	return max(secs, 1), true
}

// FormatSeconds renders a track length as M:SS.
func FormatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
