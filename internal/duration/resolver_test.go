package duration

import (
	"errors"
	"testing"
)

// stubLookup returns a canned duration or error.
type stubLookup struct {
	ms    int
	err   error
	calls int
}

func (s *stubLookup) TrackDuration(_, _ string) (int, error) {
	s.calls++
	return s.ms, s.err
}

func TestResolve_CatalogDuration(t *testing.T) {
	tests := []struct {
		input       string
		wantSecs    int
		wantDisplay string
	}{
		{"2:05", 125, "2:05"},
		{"1:02:03", 3723, "1:02:03"},
		{"0:45", 45, "0:45"},
		{" 3:30 ", 210, "3:30"},
		{"0:00", 1, "0:00"}, // clamped, catalog formatting preserved
	}

	r := NewResolver(nil, nil)
	for _, tt := range tests {
		secs, display := r.Resolve(tt.input, "Artist", "Title")
		if secs != tt.wantSecs || display != tt.wantDisplay {
			t.Errorf("Resolve(%q) = (%d, %q), want (%d, %q)",
				tt.input, secs, display, tt.wantSecs, tt.wantDisplay)
		}
	}
}

func TestResolve_CatalogParseSkipsLookupOnSuccess(t *testing.T) {
	lookup := &stubLookup{ms: 999000}
	r := NewResolver(lookup, nil)

	secs, _ := r.Resolve("2:05", "Artist", "Title")

	if secs != 125 {
		t.Errorf("secs = %d, want 125", secs)
	}
	if lookup.calls != 0 {
		t.Errorf("lookup called %d times for a valid catalog duration", lookup.calls)
	}
}

func TestResolve_LookupFallback(t *testing.T) {
	r := NewResolver(&stubLookup{ms: 185000}, nil)

	secs, display := r.Resolve("", "Artist", "Title")

	if secs != 185 || display != "3:05" {
		t.Errorf("Resolve = (%d, %q), want (185, 3:05)", secs, display)
	}
}

func TestResolve_LookupClampsSubSecond(t *testing.T) {
	r := NewResolver(&stubLookup{ms: 500}, nil)

	secs, display := r.Resolve("", "Artist", "Title")

	if secs != 1 || display != "0:01" {
		t.Errorf("Resolve = (%d, %q), want (1, 0:01)", secs, display)
	}
}

func TestResolve_Default(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		lookup  Lookup
	}{
		{"malformed catalog, lookup error", "garbage", &stubLookup{err: errors.New("not found")}},
		{"empty catalog, zero duration", "", &stubLookup{ms: 0}},
		{"negative component, negative lookup", "-1:30", &stubLookup{ms: -5000}},
		{"four components, nil lookup", "1:2:3:4", nil},
		{"no lookup at all", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.lookup, nil)
			secs, display := r.Resolve(tt.catalog, "Artist", "Title")
			if secs != DefaultSeconds || display != "3:30" {
				t.Errorf("Resolve = (%d, %q), want (210, 3:30)", secs, display)
			}
		})
	}
}

func TestResolve_AlwaysAtLeastOneSecond(t *testing.T) {
	inputs := []string{"0:00", "0:00:00", "", "garbage", "1:60"}
	r := NewResolver(&stubLookup{ms: 1}, nil)
	for _, in := range inputs {
		if secs, _ := r.Resolve(in, "Artist", "Title"); secs < 1 {
			t.Errorf("Resolve(%q) = %d seconds, want >= 1", in, secs)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{1, "0:01"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{3723, "62:03"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.secs); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
