package notify

import (
	"errors"
	"strings"
	"testing"
)

func TestUrgencyValues(t *testing.T) {
	// Urgency values are fixed by the freedesktop notification protocol
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestMediaFailure(t *testing.T) {
	n := MediaFailure("Today", "videos/video1.mp4", errors.New("unsupported codec"))

	if n.Title != `Cannot play "Today"` {
		t.Errorf("Title = %q", n.Title)
	}
	if !strings.Contains(n.Body, "videos/video1.mp4") || !strings.Contains(n.Body, "unsupported codec") {
		t.Errorf("Body = %q, want source and cause", n.Body)
	}
	if n.Urgency != UrgencyNormal {
		t.Errorf("Urgency = %d, want normal", n.Urgency)
	}
	if n.Timeout != failureTimeout {
		t.Errorf("Timeout = %d, want %d", n.Timeout, failureTimeout)
	}
}

func TestMediaFailure_NilCause(t *testing.T) {
	n := MediaFailure("Today", "a.mp4", nil)
	if n.Body != "a.mp4" {
		t.Errorf("Body = %q, want source only", n.Body)
	}
}

type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestFailureReporter_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	r := NewFailureReporter(rec)

	if err := r.Report("A", "a.mp4", errors.New("one")); err != nil {
		t.Fatal(err)
	}
	if err := r.Report("B", "b.mp4", errors.New("two")); err != nil {
		t.Fatal(err)
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(rec.sent))
	}
	if rec.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", rec.sent[0].ReplacesID)
	}
	if rec.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", rec.sent[1].ReplacesID)
	}
}

func TestFailureReporter_Dismiss(t *testing.T) {
	rec := &recordingNotifier{}
	r := NewFailureReporter(rec)

	if err := r.Dismiss(); err != nil {
		t.Fatal(err)
	}
	if len(rec.closed) != 0 {
		t.Fatalf("Dismiss with nothing shown closed %v", rec.closed)
	}

	_ = r.Report("A", "a.mp4", nil)
	if err := r.Dismiss(); err != nil {
		t.Fatal(err)
	}
	if len(rec.closed) != 1 || rec.closed[0] != 1 {
		t.Errorf("closed = %v, want [1]", rec.closed)
	}

	_ = r.Report("B", "b.mp4", nil)
	if rec.sent[1].ReplacesID != 0 {
		t.Errorf("ReplacesID after dismiss = %d, want 0", rec.sent[1].ReplacesID)
	}
}

func TestFailureReporter_Error(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("bus gone")}
	r := NewFailureReporter(rec)

	if err := r.Report("A", "a.mp4", nil); err == nil {
		t.Error("expected notifier error")
	}
}

func TestFailureReporter_Nil(t *testing.T) {
	var r *FailureReporter
	if err := r.Report("A", "a.mp4", nil); err != nil {
		t.Errorf("nil reporter Report() = %v", err)
	}
	if err := NewFailureReporter(nil).Dismiss(); err != nil {
		t.Errorf("reporter without notifier Dismiss() = %v", err)
	}
}
