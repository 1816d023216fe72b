package discogs

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseReleaseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare ID", "8844291", 8844291, false},
		{"ID with whitespace", "  8844291 ", 8844291, false},
		{"release URL", "https://www.discogs.com/release/8844291-Artist-Title", 8844291, false},
		{"release URL without slug", "https://discogs.com/release/123", 123, false},
		{"master URL", "https://www.discogs.com/master/12345", 0, true},
		{"empty", "", 0, true},
		{"not a number", "abc", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReleaseID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidReleaseID) {
					t.Errorf("ParseReleaseID(%q) error = %v, want ErrInvalidReleaseID", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReleaseID(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseReleaseID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanArtistName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nirvana (2)", "Nirvana"},
		{"Nirvana", "Nirvana"},
		{"  Miles Davis (3)  ", "Miles Davis"},
		{"Blink (182)", "Blink"}, // suffix form always stripped
		{"(1) Band", "(1) Band"},
	}
	for _, tt := range tests {
		if got := CleanArtistName(tt.input); got != tt.want {
			t.Errorf("CleanArtistName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

const releasePayload = `{
	"id": 8844291,
	"title": "Test Album",
	"year": 1994,
	"artists": [{"name": "Nirvana (2)"}],
	"tracklist": [
		{"position": "", "type_": "heading", "title": "Side A", "duration": ""},
		{"position": "A1", "type_": "track", "title": "Opener", "duration": "2:05"},
		{"position": "A2", "type_": "track", "title": "Second", "duration": ""}
	]
}`

func TestClient_GetRelease(t *testing.T) {
	var gotPath, gotAuth, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(releasePayload))
	}))
	defer srv.Close()

	c := NewClient("secret-token")
	c.baseURL = srv.URL

	rel, err := c.GetRelease(8844291)
	if err != nil {
		t.Fatalf("GetRelease() error = %v", err)
	}

	if gotPath != "/releases/8844291" {
		t.Errorf("request path = %q, want /releases/8844291", gotPath)
	}
	if gotAuth != "Discogs token=secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if !strings.HasPrefix(gotUA, "vinyl/") {
		t.Errorf("User-Agent = %q, want vinyl/...", gotUA)
	}

	if rel.Title != "Test Album" || rel.Year != 1994 {
		t.Errorf("release = %+v", rel)
	}
	if rel.Artist != "Nirvana" {
		t.Errorf("Artist = %q, want Nirvana (suffix cleaned)", rel.Artist)
	}
	if len(rel.Tracklist) != 3 {
		t.Fatalf("len(Tracklist) = %d, want 3 (conversion keeps headings)", len(rel.Tracklist))
	}
	if rel.Tracklist[0].Type != "heading" || rel.Tracklist[1].Position != "A1" {
		t.Errorf("tracklist = %+v", rel.Tracklist)
	}
}

func TestClient_GetRelease_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Release not found."}`))
	}))
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL

	_, err := c.GetRelease(1)
	if err == nil {
		t.Fatal("GetRelease() expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want status 404 mentioned", err)
	}
}
