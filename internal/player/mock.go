package player

import "sync"

// Mock is a test double for Element.
type Mock struct {
	Hub

	mu         sync.Mutex
	source     string
	paused     bool
	muted      bool
	closed     bool
	playErr    error
	playCalls  int
	pauseCalls int
	muteCalls  []bool
	// emitOnCommand makes Play/Pause emit the matching event like a real element.
	emitOnCommand bool
}

// NewMock creates a paused mock element for source.
func NewMock(source string) *Mock {
	return &Mock{
		source:        source,
		paused:        true,
		emitOnCommand: true,
	}
}

func (m *Mock) Source() string { return m.source }

func (m *Mock) Play() error {
	m.mu.Lock()
	m.playCalls++
	if m.closed {
		m.mu.Unlock()
		return ErrReleased
	}
	if m.playErr != nil {
		err := m.playErr
		m.mu.Unlock()
		return err
	}
	m.paused = false
	emit := m.emitOnCommand
	m.mu.Unlock()
	if emit {
		m.Emit(Event{Kind: EventPlay, Source: m.source})
	}
	return nil
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	m.pauseCalls++
	if m.closed {
		m.mu.Unlock()
		return ErrReleased
	}
	m.paused = true
	emit := m.emitOnCommand
	m.mu.Unlock()
	if emit {
		m.Emit(Event{Kind: EventPause, Source: m.source})
	}
	return nil
}

func (m *Mock) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Mock) SetMuted(muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrReleased
	}
	m.muted = muted
	m.muteCalls = append(m.muteCalls, muted)
	return nil
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.CloseAll()
	return nil
}

// Test helpers

// SetEmitOnCommand controls whether Play/Pause emit events themselves.
func (m *Mock) SetEmitOnCommand(emit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emitOnCommand = emit
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) MuteCalls() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.muteCalls...)
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SimulatePlay changes state from outside the controller (autoplay start).
func (m *Mock) SimulatePlay() {
	m.mu.Lock()
	m.paused = false
	m.mu.Unlock()
	m.Emit(Event{Kind: EventPlay, Source: m.source})
}

// SimulatePause changes state from outside the controller (media key).
func (m *Mock) SimulatePause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
	m.Emit(Event{Kind: EventPause, Source: m.source})
}

// SimulateEnded fires the terminal ended event.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
	m.Emit(Event{Kind: EventEnded, Source: m.source})
}

// SimulateError fires a load/decode failure.
func (m *Mock) SimulateError(err error) {
	m.Emit(Event{Kind: EventError, Source: m.source, Err: err})
}

// Verify Mock implements Element at compile time.
var _ Element = (*Mock)(nil)

// MockBackend opens Mock elements and records them.
type MockBackend struct {
	mu       sync.Mutex
	elements []*Mock
	openErr  map[string]error
	closed   bool
}

// NewMockBackend creates an empty mock backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{openErr: make(map[string]error)}
}

// Open returns a new Mock; with Autoplay it starts playing immediately.
func (b *MockBackend) Open(source string, opts Options) (Element, error) {
	b.mu.Lock()
	if err := b.openErr[source]; err != nil {
		b.mu.Unlock()
		return nil, err
	}
	el := NewMock(source)
	el.muted = opts.Muted
	if opts.Autoplay {
		el.paused = false
	}
	b.elements = append(b.elements, el)
	b.mu.Unlock()
	return el, nil
}

func (b *MockBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// SetOpenError makes Open fail for source.
func (b *MockBackend) SetOpenError(source string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.openErr[source] = err
}

// Elements returns every element opened so far.
func (b *MockBackend) Elements() []*Mock {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Mock(nil), b.elements...)
}

// Last returns the most recently opened element, or nil.
func (b *MockBackend) Last() *Mock {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.elements) == 0 {
		return nil
	}
	return b.elements[len(b.elements)-1]
}

var _ Backend = (*MockBackend)(nil)
