// Package sequencer arbitrates which catalog entry is current. It turns scroll
// deltas, direct picks and end-of-playback signals into at most one timed
// transition at a time.
package sequencer

import (
	"errors"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultFadeDuration is the length of each half of a transition. It must
	// match the visual fade so the source swap is never visible mid-fade.
	DefaultFadeDuration = 500 * time.Millisecond
	// DefaultScrollThreshold is the minimum scroll magnitude treated as a swipe.
	DefaultScrollThreshold = 25.0
)

// ErrEmptyFeed is returned when the sequencer is created for zero entries.
var ErrEmptyFeed = errors.New("sequencer needs at least one entry")

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithFadeDuration sets the duration of each transition half.
// Non-positive values keep the default.
func WithFadeDuration(d time.Duration) Option {
	return func(s *Sequencer) {
		if d > 0 {
			s.fade = d
		}
	}
}

// WithScrollThreshold sets the debounce threshold for RequestScroll.
// Negative values keep the default.
func WithScrollThreshold(threshold float64) Option {
	return func(s *Sequencer) {
		if threshold >= 0 {
			s.threshold = threshold
		}
	}
}

// WithStartIndex sets the initial index. Out-of-range values are ignored.
func WithStartIndex(i int) Option {
	return func(s *Sequencer) {
		if i >= 0 && i < s.length {
			s.index = i
		}
	}
}

// Sequencer owns the current index and the lock window.
//
// It is not safe for concurrent use: all calls are expected to come from the
// bubbletea update loop, which also receives the timer messages it schedules.
type Sequencer struct {
	length    int
	index     int
	phase     Phase
	fade      time.Duration
	threshold float64

	// in-flight transition
	id      uint64
	target  int
	trigger Trigger
}

// New creates a sequencer for a feed of length entries, starting at index 0.
func New(length int, opts ...Option) (*Sequencer, error) {
	if length < 1 {
		return nil, ErrEmptyFeed
	}
	s := &Sequencer{
		length:    length,
		fade:      DefaultFadeDuration,
		threshold: DefaultScrollThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Index returns the current index.
func (s *Sequencer) Index() int { return s.index }

// Len returns the feed length.
func (s *Sequencer) Len() int { return s.length }

// Phase returns the transition phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// IsLocked reports whether a transition is in flight.
func (s *Sequencer) IsLocked() bool { return s.phase.Locked() }

// IsFadingOut reports whether the first half of a transition is running.
func (s *Sequencer) IsFadingOut() bool { return s.phase == PhaseFadingOut }

// FadeDuration returns the duration of one transition half.
func (s *Sequencer) FadeDuration() time.Duration { return s.fade }

// ScrollThreshold returns the debounce threshold.
func (s *Sequencer) ScrollThreshold() float64 { return s.threshold }

// RequestAdvance moves one step in the given direction. It is a no-op at the
// feed boundaries (manual navigation never wraps) and while locked.
func (s *Sequencer) RequestAdvance(d Direction) tea.Cmd {
	return s.advance(d, TriggerAdvance)
}

// RequestScroll interprets a signed scroll delta. Positive deltas advance,
// negative deltas retreat; magnitudes below the threshold are noise.
func (s *Sequencer) RequestScroll(delta float64) tea.Cmd {
	if s.dropWhileLocked(TriggerScroll) {
		return nil
	}
	if math.IsNaN(delta) || math.Abs(delta) < s.threshold {
		return nil
	}
	if delta > 0 {
		return s.advance(Next, TriggerScroll)
	}
	return s.advance(Previous, TriggerScroll)
}

// RequestSelect transitions straight to index, skipping any positions in
// between. Out-of-range indices and the current index are no-ops.
func (s *Sequencer) RequestSelect(index int) tea.Cmd {
	if index < 0 || index >= s.length || index == s.index {
		return nil
	}
	return s.begin(index, TriggerSelect)
}

// PlaybackEnded advances after the bound video finished, wrapping from the
// last entry back to the first. A single-entry feed transitions onto itself so
// the binding layer reloads and the video loops.
func (s *Sequencer) PlaybackEnded() tea.Cmd {
	return s.begin((s.index+1)%s.length, TriggerAutoplay)
}

// Update applies timer messages scheduled by this sequencer. Messages from
// another transition are ignored.
func (s *Sequencer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FadeOutDoneMsg:
		if msg.ID != s.id || s.phase != PhaseFadingOut {
			return nil
		}
		prev := s.index
		s.index = s.target
		s.phase = PhaseFadingIn
		log.Debug().
			Int("from", prev).
			Int("to", s.index).
			Stringer("trigger", s.trigger).
			Msg("feed index swapped")
		changed := IndexChangedMsg{Previous: prev, Current: s.index, Trigger: s.trigger}
		return tea.Batch(
			func() tea.Msg { return changed },
			s.schedule(func(id uint64) tea.Msg { return FadeInDoneMsg{ID: id} }),
		)

	case FadeInDoneMsg:
		if msg.ID != s.id || s.phase != PhaseFadingIn {
			return nil
		}
		s.phase = PhaseIdle
		index := s.index
		return func() tea.Msg { return UnlockedMsg{Index: index} }
	}
	return nil
}

func (s *Sequencer) advance(d Direction, trigger Trigger) tea.Cmd {
	if s.dropWhileLocked(trigger) {
		return nil
	}
	target := s.index + 1
	if d == Previous {
		target = s.index - 1
	}
	if target < 0 || target >= s.length {
		return nil
	}
	return s.begin(target, trigger)
}

// begin is the single serialization point: nothing starts unless Idle.
func (s *Sequencer) begin(target int, trigger Trigger) tea.Cmd {
	if s.dropWhileLocked(trigger) {
		return nil
	}
	s.id++
	s.target = target
	s.trigger = trigger
	s.phase = PhaseFadingOut
	return s.schedule(func(id uint64) tea.Msg { return FadeOutDoneMsg{ID: id} })
}

func (s *Sequencer) schedule(msg func(id uint64) tea.Msg) tea.Cmd {
	id := s.id
	return tea.Tick(s.fade, func(time.Time) tea.Msg {
		return msg(id)
	})
}

func (s *Sequencer) dropWhileLocked(trigger Trigger) bool {
	if !s.phase.Locked() {
		return false
	}
	log.Debug().
		Stringer("trigger", trigger).
		Stringer("phase", s.phase).
		Msg("navigation ignored: transition in flight")
	return true
}
