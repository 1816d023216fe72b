package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrobl/vinyl/internal/engine"
	"github.com/scrobl/vinyl/internal/errmsg"
)

// Update routes messages to the prompt or the main key handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)

	case StateChangedMsg:
		return m, watchEngineEvents(m.sub)

	case TrackChangedMsg:
		m.cursor = msg.Index
		m.progress = engine.Progress{Total: msg.Track.DurationSeconds}
		if msg.Playing {
			m.status = ""
			m.notifyTrack("Now Playing", fmt.Sprintf("%s – %s", msg.Track.Artist, msg.Track.Title))
		}
		return m, watchEngineEvents(m.sub)

	case ProgressMsg:
		m.progress.Elapsed = msg.Elapsed
		m.progress.Total = msg.Total
		return m, watchEngineEvents(m.sub)

	case AlbumEndedMsg:
		m.status = "End of album reached"
		m.notifyTrack("Playback finished", "End of album reached")
		return m, watchEngineEvents(m.sub)

	case EngineErrorMsg:
		m.status = errmsg.Format(msg.Op, msg.Err)
		return m, watchEngineEvents(m.sub)

	case engineClosedMsg:
		return m, tea.Quit

	case AlbumLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = errmsg.FormatWith(errmsg.OpAlbumLoad, msg.Input, msg.Err)
			return m, nil
		}
		if err := m.engine.LoadAlbum(msg.Tracks); err != nil {
			m.status = errmsg.Format(errmsg.OpAlbumLoad, err)
			return m, nil
		}
		m.cursor = 0
		m.status = fmt.Sprintf("Loaded %d tracks", msg.Tracks.Len())
		return m, nil
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		m.prompting = false
		m.input.Blur()
		m.input.SetValue("")
		if value == "" {
			return m, nil
		}
		m.loading = true
		m.status = "Loading release..."
		return m, loadAlbumCmd(m.load, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "l", "/":
		m.prompting = true
		m.input.Focus()
		return m, textinput.Blink

	case " ":
		if err := m.engine.Toggle(); err != nil {
			m.status = errmsg.Format(errmsg.OpPlaybackToggle, err)
		}
		return m, nil

	case "n":
		if err := m.engine.Next(); err != nil {
			m.status = errmsg.Format(errmsg.OpTrackNext, err)
		}
		return m, nil

	case "p":
		if err := m.engine.Previous(); err != nil {
			m.status = errmsg.Format(errmsg.OpTrackPrevious, err)
		}
		return m, nil

	case "j", "down":
		if m.cursor < len(m.engine.Tracks())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter":
		if len(m.engine.Tracks()) == 0 {
			return m, nil
		}
		if err := m.engine.Select(m.cursor); err != nil {
			m.status = errmsg.Format(errmsg.OpTrackSelect, err)
		}
		return m, nil

	case "N":
		m.notifications = !m.notifications
		if m.notifications {
			m.status = "Notifications on"
		} else {
			m.status = "Notifications off"
		}
		return m, nil
	}

	return m, nil
}
