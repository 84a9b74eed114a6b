package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/temptok/internal/mpris"
	"github.com/llehouerou/temptok/internal/playback"
	"github.com/llehouerou/temptok/internal/sequencer"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadCurrentMsg:
		cmd = m.loadCurrent()

	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case sequencer.FadeOutDoneMsg, sequencer.FadeInDoneMsg:
		cmd = m.Sequencer.Update(msg)

	case sequencer.IndexChangedMsg:
		cmd = m.handleIndexChanged(msg)

	case sequencer.UnlockedMsg:
		log.Debug().Int("index", msg.Index).Msg("feed unlocked")

	case playback.EventMsg:
		cmd = m.handleElementEvent(msg)

	case playback.MediaErrorMsg:
		cmd = m.handleMediaError(msg)

	case mpris.CommandMsg:
		cmd = m.handleMediaCommand(msg)
	}

	m.syncMuted()
	m.publishStatus()
	return m, cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.resizeTranscript()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		return m.Sequencer.RequestScroll(m.WheelDelta)
	case msg.Button == tea.MouseButtonWheelUp:
		return m.Sequencer.RequestScroll(-m.WheelDelta)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		if i, ok := m.labelAt(msg.Y); ok {
			return m.Sequencer.RequestSelect(i)
		}
	}
	return nil
}

func (m *Model) handleMediaCommand(msg mpris.CommandMsg) tea.Cmd {
	switch msg.Command {
	case mpris.CommandNext:
		return m.Sequencer.RequestAdvance(sequencer.Next)
	case mpris.CommandPrevious:
		return m.Sequencer.RequestAdvance(sequencer.Previous)
	case mpris.CommandPlayPause:
		m.togglePlayPause()
	case mpris.CommandPlay:
		m.play()
	case mpris.CommandPause:
		m.pause()
	}
	return nil
}

// publishStatus hands the MPRIS snapshot to the D-Bus side.
func (m *Model) publishStatus() {
	if m.Status == nil {
		return
	}
	entry := m.Current()
	m.Status.Publish(mpris.Status{
		Source:   entry.SourceURL,
		Label:    entry.Label,
		Location: m.Location,
		Index:    m.Sequencer.Index(),
		Count:    m.Feed.Len(),
		Playing:  !m.Playback.IsPaused(),
		Locked:   m.Sequencer.IsLocked(),
	})
}
