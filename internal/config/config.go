// Package config loads the application configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Notifications enables desktop notifications on track changes
	// (default true).
	Notifications *bool `koanf:"notifications"`

	// Last.fm credentials (required for scrobbling)
	Lastfm LastfmConfig `koanf:"lastfm"`

	// Discogs catalog access
	Discogs DiscogsConfig `koanf:"discogs"`

	// Log file settings
	Log LogConfig `koanf:"log"`
}

// LastfmConfig holds Last.fm API and account credentials.
type LastfmConfig struct {
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
	Username  string `koanf:"username"`
	Password  string `koanf:"password"`
}

// DiscogsConfig holds Discogs API access.
type DiscogsConfig struct {
	Token string `koanf:"token"` // personal access token
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `koanf:"level"` // debug, info, warn, error (default: info)
	Path       string `koanf:"path"`  // default: $XDG_STATE_HOME/vinyl/vinyl.log
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// Load reads configuration. With an explicit path only that file is read;
// otherwise the default locations are tried in order (last wins).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := []string{path}
	if path == "" {
		paths = getConfigPaths()
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", p, err)
			}
		} else if path != "" {
			return nil, fmt.Errorf("config file %s: %w", p, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}

	return cfg, nil
}

// DefaultPath returns the primary config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "vinyl", "config.toml")
}

func getConfigPaths() []string {
	// 1. $XDG_CONFIG_HOME/vinyl/config.toml
	// 2. ./config.toml (pwd, highest priority)
	return []string{DefaultPath(), "config.toml"}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// NotificationsEnabled returns the notifications setting with its default.
func (c *Config) NotificationsEnabled() bool {
	if c.Notifications == nil {
		return true
	}
	return *c.Notifications
}

// HasLastfmConfig returns true if Last.fm credentials are configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.APISecret != "" &&
		c.Lastfm.Username != "" && c.Lastfm.Password != ""
}

// HasDiscogsConfig returns true if Discogs access is configured.
func (c *Config) HasDiscogsConfig() bool {
	return c.Discogs.Token != ""
}

const defaultConfigTemplate = `# vinyl configuration
notifications = true

[lastfm]
api_key = ""
api_secret = ""
username = ""
password = ""

[discogs]
token = ""
`

// WriteDefault creates the default config file with a template, so first-run
// users have something to edit. Returns the file path.
func WriteDefault() (string, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
