package album

// CatalogEntry is a raw tracklist row as delivered by the catalog.
type CatalogEntry struct {
	Position string
	Type     string // "track", "heading", "index"; empty is treated as a track
	Title    string
	Duration string // catalog duration string, may be empty or malformed
}

// Resolver produces a validated duration for a track.
// Implementations never fail; they fall back to a default length.
type Resolver interface {
	Resolve(catalogDuration, artist, title string) (seconds int, display string)
}

// TrackList is an ordered, fixed sequence of tracks for one loaded release.
type TrackList struct {
	tracks []Track
}

// Load builds a TrackList from raw catalog entries. Non-playable rows
// (headings, index headers) are skipped. Returns ErrEmptyAlbum when no
// playable tracks remain.
func Load(artist, title string, entries []CatalogEntry, r Resolver) (*TrackList, error) {
	tracks := make([]Track, 0, len(entries))
	for _, e := range entries {
		if !playable(e) {
			continue
		}
		secs, display := r.Resolve(e.Duration, artist, e.Title)
		tracks = append(tracks, Track{
			Position:        e.Position,
			Title:           e.Title,
			Artist:          artist,
			Album:           title,
			DurationSeconds: secs,
			DurationDisplay: display,
		})
	}
	if len(tracks) == 0 {
		return nil, ErrEmptyAlbum
	}
	return &TrackList{tracks: tracks}, nil
}

// playable reports whether a catalog row is an actual track. Discogs marks
// section headers as "heading" and side headers as "index"; rows without a
// type are kept because some catalog dumps omit the field.
func playable(e CatalogEntry) bool {
	return e.Type == "" || e.Type == "track"
}

// Len returns the number of tracks.
func (l *TrackList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.tracks)
}

// At returns the track at index i.
func (l *TrackList) At(i int) (Track, error) {
	if l == nil || i < 0 || i >= len(l.tracks) {
		return Track{}, ErrIndexOutOfRange
	}
	return l.tracks[i], nil
}

// Tracks returns a copy of all tracks in catalog order.
func (l *TrackList) Tracks() []Track {
	if l == nil {
		return nil
	}
	out := make([]Track, len(l.tracks))
	copy(out, l.tracks)
	return out
}
