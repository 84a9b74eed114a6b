// Package playback mirrors the play/pause state of the bound media element
// and owns the user's mute intent.
package playback

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/temptok/internal/player"
)

// EndedHandler receives end-of-playback notifications. The sequencer
// implements it.
type EndedHandler interface {
	PlaybackEnded() tea.Cmd
}

// MediaErrorMsg reports a load or decode failure of the bound element.
type MediaErrorMsg struct {
	Source string
	Err    error
}

// Mirror keeps IsPaused truthful to the bound element.
//
// IsPaused is written only from the element's play and pause events; commands
// never set it, so the flag follows reality even when something else (autoplay,
// a media key, the player window) changes the play state.
type Mirror struct {
	muted   bool
	paused  bool
	binding *Binding
	nextID  uint64
	ended   EndedHandler
}

// NewMirror creates a mirror that forwards ended events to ended.
// Videos start muted and the element is considered paused until it says otherwise.
func NewMirror(ended EndedHandler) *Mirror {
	return &Mirror{
		muted:  true,
		paused: true,
		ended:  ended,
	}
}

// IsMuted returns the user's mute intent.
func (m *Mirror) IsMuted() bool { return m.muted }

// IsPaused returns the last play state reported by the element.
func (m *Mirror) IsPaused() bool { return m.paused }

// Binding returns the current binding, or nil.
func (m *Mirror) Binding() *Binding { return m.binding }

// Element returns the bound element, or nil.
func (m *Mirror) Element() player.Element {
	if m.binding == nil {
		return nil
	}
	return m.binding.element
}

// Bind attaches listeners to el. Any previous binding is released first, so
// no event from a stale element reaches the mirror. The returned command
// starts the listen chain and must be handed to the runtime.
//
// IsPaused keeps its current value until el reports its own state.
func (m *Mirror) Bind(el player.Element) (*Binding, tea.Cmd) {
	m.Unbind()
	m.nextID++
	m.binding = newBinding(m.nextID, el)
	log.Debug().
		Uint64("binding", m.binding.id).
		Str("source", el.Source()).
		Msg("media element bound")
	return m.binding, m.binding.listen()
}

// Unbind releases the current binding, if any.
func (m *Mirror) Unbind() {
	if m.binding == nil {
		return
	}
	m.binding.Release()
	m.binding = nil
}

// Update applies element events. Events from released bindings are dropped
// and their listen chain is not re-armed.
func (m *Mirror) Update(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(EventMsg)
	if !ok {
		return nil
	}
	if m.binding == nil || ev.BindingID != m.binding.id {
		log.Debug().
			Uint64("binding", ev.BindingID).
			Stringer("event", ev.Event.Kind).
			Msg("dropped event from stale binding")
		return nil
	}

	var extra tea.Cmd
	switch ev.Event.Kind {
	case player.EventPlay:
		m.paused = false
	case player.EventPause:
		m.paused = true
	case player.EventEnded:
		if m.ended != nil {
			extra = m.ended.PlaybackEnded()
		}
	case player.EventError:
		failure := MediaErrorMsg{Source: ev.Event.Source, Err: ev.Event.Err}
		extra = func() tea.Msg { return failure }
	}
	return tea.Batch(m.binding.listen(), extra)
}

// RequestTogglePlayPause issues play or pause depending on the element's live
// paused flag. The mirrored flag updates when the element reports back.
func (m *Mirror) RequestTogglePlayPause() error {
	el := m.Element()
	if el == nil {
		return nil
	}
	if el.Paused() {
		return el.Play()
	}
	return el.Pause()
}

// RequestPlay asks the element to play.
func (m *Mirror) RequestPlay() error {
	if el := m.Element(); el != nil {
		return el.Play()
	}
	return nil
}

// RequestPause asks the element to pause.
func (m *Mirror) RequestPause() error {
	if el := m.Element(); el != nil {
		return el.Pause()
	}
	return nil
}

// RequestToggleMute flips the mute intent. The binding layer applies it to
// the element.
func (m *Mirror) RequestToggleMute() {
	m.muted = !m.muted
}

// SyncMuted makes the element's mute flag equal to the mute intent. It is
// idempotent and meant to run after every update.
func (m *Mirror) SyncMuted() error {
	el := m.Element()
	if el == nil || el.Muted() == m.muted {
		return nil
	}
	return el.SetMuted(m.muted)
}
