package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrobl/vinyl/internal/engine"
)

// watchEngineEvents waits for the next engine event and converts it to a
// tea.Msg. Handlers must re-arm it after every engine message.
func watchEngineEvents(sub *engine.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.Progressed:
			return ProgressMsg(e)
		case <-sub.AlbumEnded:
			return AlbumEndedMsg{}
		case e := <-sub.Error:
			return EngineErrorMsg(e)
		case <-sub.Done:
			return engineClosedMsg{}
		}
	}
}

// loadAlbumCmd fetches a release off the UI loop.
func loadAlbumCmd(load LoadFunc, input string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := load(input)
		return AlbumLoadedMsg{Tracks: tracks, Input: input, Err: err}
	}
}
