package album

import (
	"errors"
	"testing"
)

// fixedResolver returns the catalog duration parsed naively, or a fixed
// fallback, without touching any external service.
type fixedResolver struct{}

func (fixedResolver) Resolve(catalogDuration, _, _ string) (int, string) {
	if catalogDuration == "2:05" {
		return 125, "2:05"
	}
	return 210, "3:30"
}

func TestLoad_FiltersNonPlayableEntries(t *testing.T) {
	entries := []CatalogEntry{
		{Position: "", Type: "heading", Title: "Side A"},
		{Position: "A1", Type: "track", Title: "Opener", Duration: "2:05"},
		{Position: "", Type: "index", Title: "Suite"},
		{Position: "A2", Title: "Closer"}, // empty type counts as a track
	}

	l, err := Load("Artist", "Album", entries, fixedResolver{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	first, err := l.At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}
	if first.Title != "Opener" || first.Position != "A1" {
		t.Errorf("At(0) = %+v, want Opener/A1", first)
	}
	if first.Artist != "Artist" || first.Album != "Album" {
		t.Errorf("release fields not inherited: %+v", first)
	}
	if first.DurationSeconds != 125 || first.DurationDisplay != "2:05" {
		t.Errorf("duration = (%d, %q), want (125, 2:05)", first.DurationSeconds, first.DurationDisplay)
	}
}

func TestLoad_EmptyAlbum(t *testing.T) {
	tests := []struct {
		name    string
		entries []CatalogEntry
	}{
		{"no entries", nil},
		{"only headings", []CatalogEntry{
			{Type: "heading", Title: "Side A"},
			{Type: "heading", Title: "Side B"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("Artist", "Album", tt.entries, fixedResolver{})
			if !errors.Is(err, ErrEmptyAlbum) {
				t.Errorf("Load() error = %v, want ErrEmptyAlbum", err)
			}
		})
	}
}

func TestTrackList_At_OutOfRange(t *testing.T) {
	l, err := Load("Artist", "Album", []CatalogEntry{{Type: "track", Title: "Only"}}, fixedResolver{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, i := range []int{-1, 1, 99} {
		if _, err := l.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestTrackList_Tracks_ReturnsCopy(t *testing.T) {
	l, err := Load("Artist", "Album", []CatalogEntry{
		{Type: "track", Title: "One"},
		{Type: "track", Title: "Two"},
	}, fixedResolver{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tracks := l.Tracks()
	tracks[0].Title = "mutated"

	got, _ := l.At(0)
	if got.Title != "One" {
		t.Errorf("TrackList mutated through Tracks() copy: %q", got.Title)
	}
}

func TestNilTrackList(t *testing.T) {
	var l *TrackList
	if l.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", l.Len())
	}
	if _, err := l.At(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("nil At(0) error = %v, want ErrIndexOutOfRange", err)
	}
	if l.Tracks() != nil {
		t.Error("nil Tracks() should be nil")
	}
}
