package discogs

// Release is a Discogs release with its tracklist.
type Release struct {
	ID        int64
	Title     string
	Artist    string // primary artist, disambiguation suffix removed
	Year      int
	Tracklist []TracklistEntry
}

// TracklistEntry is one row of a release tracklist. Non-track rows carry
// Type "heading" or "index".
type TracklistEntry struct {
	Position string
	Type     string
	Title    string
	Duration string
}

// releaseResponse is the raw payload from /releases/{id}.
type releaseResponse struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Year      int              `json:"year"`
	Artists   []artistCredit   `json:"artists"`
	Tracklist []tracklistEntry `json:"tracklist"`
}

type artistCredit struct {
	Name string `json:"name"`
}

type tracklistEntry struct {
	Position string `json:"position"`
	Type     string `json:"type_"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}
