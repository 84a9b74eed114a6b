package player

// EventKind enumerates the notifications a media element emits.
type EventKind int

const (
	EventPlay EventKind = iota
	EventPause
	EventEnded
	EventError
)

// String returns the event name as the element reports it.
func (k EventKind) String() string {
	switch k {
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a notification from a media element.
//
// Ended fires once per terminal playback, never while seeking or looping.
// Error carries the load or decode failure in Err.
type Event struct {
	Kind   EventKind
	Source string
	Err    error
}
