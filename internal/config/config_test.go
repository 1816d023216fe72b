package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
notifications = false

[lastfm]
api_key = "key"
api_secret = "secret"
username = "user"
password = "pass"

[discogs]
token = "tok"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NotificationsEnabled() {
		t.Error("notifications should be disabled")
	}
	if !cfg.HasLastfmConfig() {
		t.Error("HasLastfmConfig() = false, want true")
	}
	if !cfg.HasDiscogsConfig() {
		t.Error("HasDiscogsConfig() = false, want true")
	}
	if cfg.Lastfm.Username != "user" {
		t.Errorf("Username = %q, want user", cfg.Lastfm.Username)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() expected error for missing explicit path")
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.NotificationsEnabled() {
		t.Error("notifications should default to enabled")
	}
	if cfg.HasLastfmConfig() {
		t.Error("HasLastfmConfig() = true for empty config")
	}
	if cfg.HasDiscogsConfig() {
		t.Error("HasDiscogsConfig() = true for empty config")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/logs/vinyl.log", filepath.Join(home, "logs", "vinyl.log")},
		{"/var/log/vinyl.log", "/var/log/vinyl.log"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
