// Package ui implements the terminal interface: album view, progress bar,
// and the release prompt.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/scrobl/vinyl/internal/album"
	"github.com/scrobl/vinyl/internal/engine"
	"github.com/scrobl/vinyl/internal/notify"
)

// LoadFunc fetches a release by user input (ID or URL) and builds its
// track list.
type LoadFunc func(input string) (*album.TrackList, error)

// Params collects the collaborators the UI needs.
type Params struct {
	Engine        *engine.Engine
	Load          LoadFunc
	Notifier      notify.Notifier
	Notifications bool
	Logger        *zap.Logger
}

// Model is the bubbletea model for the whole application.
type Model struct {
	engine   *engine.Engine
	sub      *engine.Subscription
	load     LoadFunc
	notifier notify.Notifier
	log      *zap.Logger

	notifications bool
	lastNotifID   uint32

	input     textinput.Model
	prompting bool
	loading   bool

	cursor   int
	progress engine.Progress
	status   string

	width  int
	height int
}

// New creates the application model.
func New(p Params) Model {
	ti := textinput.New()
	ti.Placeholder = "Discogs release ID or URL"
	ti.CharLimit = 120

	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		engine:        p.Engine,
		sub:           p.Engine.Subscribe(),
		load:          p.Load,
		notifier:      p.Notifier,
		notifications: p.Notifications,
		log:           log,
		input:         ti,
		status:        "Press l to load an album",
	}
}

// Init starts watching engine events.
func (m Model) Init() tea.Cmd {
	return watchEngineEvents(m.sub)
}

// notifyTrack shows a desktop notification for the track, replacing the
// previous one so skipping doesn't stack banners.
func (m *Model) notifyTrack(title, body string) {
	if !m.notifications || m.notifier == nil {
		return
	}
	id, err := m.notifier.Notify(notify.Notification{
		Title:      title,
		Body:       body,
		ReplacesID: m.lastNotifID,
		Timeout:    5000,
	})
	if err != nil {
		m.log.Warn("notification failed", zap.Error(err))
		return
	}
	if id != 0 {
		m.lastNotifID = id
	}
}
