package app

import (
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/temptok/internal/config"
	"github.com/llehouerou/temptok/internal/mpris"
	"github.com/llehouerou/temptok/internal/player"
)

const testFade = 500 * time.Millisecond

type fakeJournal struct {
	mu       sync.Mutex
	played   []string
	failures []string
	err      error
}

func (j *fakeJournal) RecordPlayed(source, _ string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.played = append(j.played, source)
	return j.err
}

func (j *fakeJournal) RecordFailure(source, _ string, _ error) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.failures = append(j.failures, source)
	return j.err
}

func (j *fakeJournal) Played() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.played...)
}

func (j *fakeJournal) Failures() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.failures...)
}

type fakeNotifier struct {
	mu     sync.Mutex
	labels []string
}

func (n *fakeNotifier) Report(label, _ string, _ error) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.labels = append(n.labels, label)
	return nil
}

func (n *fakeNotifier) Labels() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.labels...)
}

// harness drives a Model the way the bubbletea runtime does, inside a
// synctest bubble so fade timers run on the fake clock.
type harness struct {
	t        *testing.T
	model    Model
	backend  *player.MockBackend
	journal  *fakeJournal
	failures *fakeNotifier
	status   *mpris.Controller
	msgs     chan tea.Msg
}

func testConfig(videos ...config.VideoConfig) *config.Config {
	if len(videos) == 0 {
		videos = []config.VideoConfig{
			{Source: "videos/video1.mp4", Label: "Today", Transcript: "Sunny and mild."},
			{Source: "videos/video2.mp4", Label: "Tomorrow", Transcript: "Rain by noon."},
			{Source: "videos/video3.mp4", Label: "Weekend", Transcript: "Clear skies."},
		}
	}
	return &config.Config{
		Location: "TempTok for Testville",
		Feed:     config.FeedConfig{FadeMS: int(testFade / time.Millisecond)},
		Videos:   videos,
	}
}

// newHarness must be called inside synctest.Test.
func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()

	h := &harness{
		t:        t,
		backend:  player.NewMockBackend(),
		journal:  &fakeJournal{},
		failures: &fakeNotifier{},
		status:   mpris.NewController(),
		msgs:     make(chan tea.Msg, 256),
	}

	m, err := New(cfg, Deps{
		Backend:  h.backend,
		Journal:  h.journal,
		Failures: h.failures,
		Status:   h.status,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.model = m
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.run(m.Init())
	h.settle()

	t.Cleanup(func() { h.model.Close() })
	return h
}

func (h *harness) send(msg tea.Msg) {
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatal("Update should return Model")
	}
	h.model = m
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		if msg := cmd(); msg != nil {
			h.msgs <- msg
		}
	}()
}

// settle delivers every message that is ready without advancing the clock.
func (h *harness) settle() {
	for {
		synctest.Wait()
		select {
		case msg := <-h.msgs:
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, cmd := range batch {
					h.run(cmd)
				}
				continue
			}
			h.send(msg)
		default:
			return
		}
	}
}

// advance moves the fake clock forward and delivers what became ready.
func (h *harness) advance(d time.Duration) {
	time.Sleep(d)
	h.settle()
}

// input sends a message and delivers its immediate consequences.
func (h *harness) input(msg tea.Msg) {
	h.send(msg)
	h.settle()
}

// completeTransition runs both fade halves.
func (h *harness) completeTransition() {
	h.advance(testFade)
	h.advance(testFade)
}

func (h *harness) element() *player.Mock {
	return h.backend.Last()
}

var errCodec = errors.New("unsupported codec")
