package playback

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/temptok/internal/player"
)

// EventMsg carries an element event into the update loop, tagged with the
// binding it was received on.
type EventMsg struct {
	BindingID uint64
	Event     player.Event
}

// Binding is the release handle for listeners attached to one element.
type Binding struct {
	id       uint64
	element  player.Element
	sub      *player.Subscription
	released chan struct{}
	once     sync.Once
}

func newBinding(id uint64, el player.Element) *Binding {
	return &Binding{
		id:       id,
		element:  el,
		sub:      el.Subscribe(),
		released: make(chan struct{}),
	}
}

// ID returns the binding identifier carried by its EventMsg values.
func (b *Binding) ID() uint64 { return b.id }

// Element returns the bound element.
func (b *Binding) Element() player.Element { return b.element }

// Release detaches the listeners. No event received after Release returns is
// delivered for this binding. Safe to call more than once.
func (b *Binding) Release() {
	b.once.Do(func() {
		close(b.released)
		b.element.Unsubscribe(b.sub)
	})
}

// Released reports whether Release was called.
func (b *Binding) Released() bool {
	select {
	case <-b.released:
		return true
	default:
		return false
	}
}

// listen waits for the next event. It yields nil once the binding is released
// or the element goes away, which ends the listen chain.
func (b *Binding) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.released:
			return nil
		case <-b.sub.Done:
			return nil
		case e := <-b.sub.Events:
			return EventMsg{BindingID: b.id, Event: e}
		}
	}
}
