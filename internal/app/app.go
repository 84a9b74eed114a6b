// Package app is the root bubbletea model of the feed: it routes input to the
// sequencer, binds the current video to the player and renders the screen.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/temptok/internal/catalog"
	"github.com/llehouerou/temptok/internal/config"
	"github.com/llehouerou/temptok/internal/keymap"
	"github.com/llehouerou/temptok/internal/playback"
	"github.com/llehouerou/temptok/internal/player"
	"github.com/llehouerou/temptok/internal/sequencer"
)

// Deps are the collaborators the model drives. Backend is required; the
// rest may be nil.
type Deps struct {
	Backend  player.Backend
	Journal  Journal
	Failures FailureNotifier
	Status   StatusPublisher
}

// Model is the root application model containing all state.
type Model struct {
	Location   string
	Feed       *catalog.Catalog
	Sequencer  *sequencer.Sequencer
	Playback   *playback.Mirror
	Backend    player.Backend
	Keys       *keymap.Resolver
	Transcript viewport.Model
	Journal    Journal
	Failures   FailureNotifier
	Status     StatusPublisher
	WheelDelta float64
	ShowHelp   bool
	ErrorMsg   string
	ErrorAt    time.Time
	Width      int
	Height     int

	now func() time.Time
}

// New creates the application model from configuration.
func New(cfg *config.Config, deps Deps) (Model, error) {
	feed, err := cfg.Catalog()
	if err != nil {
		return Model{}, err
	}

	feedCfg := cfg.GetFeedConfig()
	seq, err := sequencer.New(feed.Len(),
		sequencer.WithFadeDuration(feedCfg.FadeDuration()),
		sequencer.WithScrollThreshold(feedCfg.ScrollThreshold),
	)
	if err != nil {
		return Model{}, err
	}

	return Model{
		Location:   cfg.GetLocation(),
		Feed:       feed,
		Sequencer:  seq,
		Playback:   playback.NewMirror(seq),
		Backend:    deps.Backend,
		Keys:       keymap.NewResolver(keymap.Bindings),
		Transcript: viewport.New(0, 0),
		Journal:    deps.Journal,
		Failures:   deps.Failures,
		Status:     deps.Status,
		WheelDelta: feedCfg.WheelDelta,
		now:        time.Now,
	}, nil
}

// Init implements tea.Model. The first video is loaded from the update loop
// so its binding is owned by the running program.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return loadCurrentMsg{} }
}

// Current returns the catalog entry on screen.
func (m Model) Current() catalog.Entry {
	return m.Feed.At(m.Sequencer.Index())
}

// Close releases the bound video. The backend itself is owned by the caller.
func (m Model) Close() {
	el := m.Playback.Element()
	m.Playback.Unbind()
	if el != nil {
		_ = el.Close()
	}
}
