package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/temptok/internal/keymap"
	"github.com/llehouerou/temptok/internal/sequencer"
)

// handleKey dispatches a key press through the resolver.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch m.Keys.Resolve(key) {
	case keymap.ActionQuit:
		m.Close()
		return tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.resizeTranscript()
	case keymap.ActionNextVideo:
		return m.Sequencer.RequestAdvance(sequencer.Next)
	case keymap.ActionPrevVideo:
		return m.Sequencer.RequestAdvance(sequencer.Previous)
	case keymap.ActionSelectVideo:
		if i, ok := keymap.SelectIndex(key); ok {
			return m.Sequencer.RequestSelect(i)
		}
	case keymap.ActionPlayPause:
		m.togglePlayPause()
	case keymap.ActionToggleMute:
		m.Playback.RequestToggleMute()
	case keymap.ActionTranscriptDown:
		m.Transcript.HalfViewDown()
	case keymap.ActionTranscriptUp:
		m.Transcript.HalfViewUp()
	}
	return nil
}
