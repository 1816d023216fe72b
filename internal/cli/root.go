// Package cli wires the application together and runs the TUI.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scrobl/vinyl/internal/album"
	"github.com/scrobl/vinyl/internal/config"
	"github.com/scrobl/vinyl/internal/discogs"
	"github.com/scrobl/vinyl/internal/duration"
	"github.com/scrobl/vinyl/internal/engine"
	"github.com/scrobl/vinyl/internal/lastfm"
	"github.com/scrobl/vinyl/internal/logging"
	"github.com/scrobl/vinyl/internal/notify"
	"github.com/scrobl/vinyl/internal/ui"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vinyl",
	Short: "Scrobble vinyl plays to Last.fm from a Discogs release.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(configPath)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !cfg.HasLastfmConfig() || !cfg.HasDiscogsConfig() {
		path, werr := config.WriteDefault()
		if werr != nil {
			return fmt.Errorf("write default config: %w", werr)
		}
		return fmt.Errorf("missing credentials: fill in Last.fm and Discogs settings in %s", path)
	}

	log := logging.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	lfm := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)
	if err := lfm.Login(cfg.Lastfm.Username, cfg.Lastfm.Password); err != nil {
		return fmt.Errorf("last.fm login: %w", err)
	}
	log.Info("authenticated with last.fm", zap.String("username", cfg.Lastfm.Username))

	catalog := discogs.NewClient(cfg.Discogs.Token)
	resolver := duration.NewResolver(lfm, log)

	eng := engine.New(lastfm.NewScrobbler(lfm), log)
	defer eng.Close()

	notifier, err := notify.New()
	if err != nil {
		log.Warn("notifications unavailable", zap.Error(err))
		notifier = nil
	}

	load := func(input string) (*album.TrackList, error) {
		id, err := discogs.ParseReleaseID(input)
		if err != nil {
			return nil, err
		}
		release, err := catalog.GetRelease(id)
		if err != nil {
			return nil, err
		}
		entries := make([]album.CatalogEntry, 0, len(release.Tracklist))
		for _, t := range release.Tracklist {
			entries = append(entries, album.CatalogEntry{
				Position: t.Position,
				Type:     t.Type,
				Title:    t.Title,
				Duration: t.Duration,
			})
		}
		return album.Load(release.Artist, release.Title, entries, resolver)
	}

	model := ui.New(ui.Params{
		Engine:        eng,
		Load:          load,
		Notifier:      notifier,
		Notifications: cfg.NotificationsEnabled(),
		Logger:        log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
