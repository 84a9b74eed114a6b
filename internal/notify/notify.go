// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"sync"
)

const appName = "TempTok"

// Urgency represents notification priority levels as defined by freedesktop notifications.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// failureTimeout is how long a media failure stays on screen.
const failureTimeout int32 = 5000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// MediaFailure builds the notification shown when a video cannot play.
func MediaFailure(label, source string, cause error) Notification {
	body := source
	if cause != nil {
		body = fmt.Sprintf("%s\n%v", source, cause)
	}
	return Notification{
		Title:   fmt.Sprintf("Cannot play %q", label),
		Body:    body,
		Icon:    "dialog-error",
		Timeout: failureTimeout,
		Urgency: UrgencyNormal,
	}
}

// FailureReporter shows media failures, reusing one notification bubble so
// repeated failures replace each other instead of stacking.
type FailureReporter struct {
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
}

func NewFailureReporter(n Notifier) *FailureReporter {
	return &FailureReporter{notifier: n}
}

// Report sends a failure notification for the given video.
func (r *FailureReporter) Report(label, source string, cause error) error {
	if r == nil || r.notifier == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := MediaFailure(label, source, cause)
	n.ReplacesID = r.lastID
	id, err := r.notifier.Notify(n)
	if err != nil {
		return err
	}
	r.lastID = id
	return nil
}

// Dismiss closes the last failure notification, if any.
func (r *FailureReporter) Dismiss() error {
	if r == nil || r.notifier == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastID == 0 {
		return nil
	}
	id := r.lastID
	r.lastID = 0
	return r.notifier.Close(id)
}
