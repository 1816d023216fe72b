package discogs

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidReleaseID is returned when no release ID can be extracted from
// user input.
var ErrInvalidReleaseID = errors.New("invalid discogs release ID")

var (
	releaseURLRe   = regexp.MustCompile(`/release/(\d+)`)
	artistSuffixRe = regexp.MustCompile(`\s*\(\d+\)\s*$`)
)

// ParseReleaseID extracts a numeric release ID from user input, which may be
// a bare ID ("8844291") or a discogs.com URL
// ("https://www.discogs.com/release/8844291-Artist-Title").
func ParseReleaseID(input string) (int64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrInvalidReleaseID
	}

	if strings.Contains(input, "/") {
		m := releaseURLRe.FindStringSubmatch(input)
		if m == nil {
			return 0, ErrInvalidReleaseID
		}
		input = m[1]
	}

	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidReleaseID
	}
	return id, nil
}

// CleanArtistName strips the Discogs disambiguation suffix ("Nirvana (2)")
// so names match what Last.fm expects.
func CleanArtistName(name string) string {
	return strings.TrimSpace(artistSuffixRe.ReplaceAllString(name, ""))
}
