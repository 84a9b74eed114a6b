package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/temptok/internal/catalog"
	"github.com/llehouerou/temptok/internal/errmsg"
	"github.com/llehouerou/temptok/internal/playback"
	"github.com/llehouerou/temptok/internal/player"
	"github.com/llehouerou/temptok/internal/sequencer"
	"github.com/llehouerou/temptok/internal/ui/render"
)

// loadCurrent replaces the bound element with one for the current entry.
// New videos autoplay with the current mute intent.
func (m *Model) loadCurrent() tea.Cmd {
	entry := m.Current()

	if old := m.Playback.Element(); old != nil {
		m.Playback.Unbind()
		if err := old.Close(); err != nil {
			log.Debug().Err(err).Str("source", old.Source()).Msg("close previous element")
		}
	}
	m.setTranscript(entry)

	el, err := m.Backend.Open(entry.SourceURL, player.Options{
		Muted:    m.Playback.IsMuted(),
		Autoplay: true,
	})
	if err != nil {
		return m.reportFailure(errmsg.OpVideoLoad, entry, err)
	}

	_, listen := m.Playback.Bind(el)
	return listen
}

func (m *Model) handleIndexChanged(msg sequencer.IndexChangedMsg) tea.Cmd {
	log.Info().
		Int("from", msg.Previous).
		Int("to", msg.Current).
		Stringer("trigger", msg.Trigger).
		Str("label", m.Current().Label).
		Msg("showing video")
	return m.loadCurrent()
}

func (m *Model) handleElementEvent(msg playback.EventMsg) tea.Cmd {
	var record tea.Cmd
	if b := m.Playback.Binding(); b != nil && b.ID() == msg.BindingID {
		switch msg.Event.Kind {
		case player.EventPlay:
			m.clearError()
		case player.EventEnded:
			record = m.recordPlayed(m.Current())
		}
	}
	return tea.Batch(m.Playback.Update(msg), record)
}

func (m *Model) handleMediaError(msg playback.MediaErrorMsg) tea.Cmd {
	entry := m.Current()
	if entry.SourceURL != msg.Source {
		entry = catalog.Entry{SourceURL: msg.Source, Label: msg.Source}
	}
	return m.reportFailure(errmsg.OpVideoPlay, entry, msg.Err)
}

// reportFailure surfaces a media failure. The sequencer is untouched: the
// lock window is time-driven and the user can move on.
func (m *Model) reportFailure(op errmsg.Op, entry catalog.Entry, err error) tea.Cmd {
	log.Error().
		Err(err).
		Str("op", string(op)).
		Str("source", entry.SourceURL).
		Str("label", entry.Label).
		Msg("media failure")
	m.setError(errmsg.FormatWith(op, entry.Label, err))

	journal, failures := m.Journal, m.Failures
	if journal == nil && failures == nil {
		return nil
	}
	return func() tea.Msg {
		if journal != nil {
			if jerr := journal.RecordFailure(entry.SourceURL, entry.Label, err); jerr != nil {
				log.Warn().Err(jerr).Msg(errmsg.Format(errmsg.OpJournalRecord, jerr))
			}
		}
		if failures != nil {
			if nerr := failures.Report(entry.Label, entry.SourceURL, err); nerr != nil {
				log.Debug().Err(nerr).Msg("desktop notification failed")
			}
		}
		return nil
	}
}

func (m *Model) recordPlayed(entry catalog.Entry) tea.Cmd {
	if m.Journal == nil {
		return nil
	}
	journal := m.Journal
	return func() tea.Msg {
		if err := journal.RecordPlayed(entry.SourceURL, entry.Label); err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpJournalRecord, err))
		}
		return nil
	}
}

func (m *Model) togglePlayPause() {
	if err := m.Playback.RequestTogglePlayPause(); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpVideoPlay, m.Current().Label, err))
	}
}

func (m *Model) play() {
	if err := m.Playback.RequestPlay(); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpVideoPlay, m.Current().Label, err))
	}
}

func (m *Model) pause() {
	if err := m.Playback.RequestPause(); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpVideoPause, m.Current().Label, err))
	}
}

// syncMuted applies the mute intent to the bound element after every update.
func (m *Model) syncMuted() {
	if err := m.Playback.SyncMuted(); err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpVideoMute, err))
	}
}

func (m *Model) setError(msg string) {
	m.ErrorMsg = msg
	m.ErrorAt = m.clock()
}

func (m *Model) clearError() {
	m.ErrorMsg = ""
	m.ErrorAt = time.Time{}
}

func (m *Model) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

func (m *Model) setTranscript(entry catalog.Entry) {
	m.Transcript.SetContent(render.Wrap(entry.Transcript, m.Transcript.Width))
	m.Transcript.GotoTop()
}
