package player

import "sync"

const eventBufferSize = 16

// Subscription delivers element events to one listener.
type Subscription struct {
	Events <-chan Event
	Done   <-chan struct{}

	eventCh chan Event
	doneCh  chan struct{}
	once    sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		eventCh: make(chan Event, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Events = s.eventCh
	s.Done = s.doneCh
	return s
}

// close signals the listener to stop. Safe to call more than once.
func (s *Subscription) close() {
	s.once.Do(func() { close(s.doneCh) })
}

// send delivers an event without blocking; it is dropped if the buffer is full.
func (s *Subscription) send(e Event) {
	select {
	case <-s.doneCh:
	case s.eventCh <- e:
	default:
	}
}

// Hub fans events out to subscriptions. Element implementations embed it.
type Hub struct {
	mu   sync.Mutex
	subs []*Subscription
}

// Subscribe registers a new listener.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	sub := newSubscription()
	h.subs = append(h.subs, sub)
	return sub
}

// Unsubscribe removes sub and closes it. After it returns no further events
// are delivered to sub.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s == sub {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			break
		}
	}
	sub.close()
}

// Emit sends e to every current subscription.
func (h *Hub) Emit(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		s.send(e)
	}
}

// CloseAll closes and forgets every subscription.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		s.close()
	}
	h.subs = nil
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
