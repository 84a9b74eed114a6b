package sequencer

// Phase is the transition state of the sequencer.
//
// Every accepted trigger walks the same cycle:
//
//	┌──────┐  trigger   ┌───────────┐  after D   ┌──────────┐
//	│ Idle │ ─────────▶ │ FadingOut │ ─────────▶ │ FadingIn │
//	└──────┘            └───────────┘ index swap └──────────┘
//	    ▲                                              │
//	    └──────────────────── after D ─────────────────┘
//
// Only Idle accepts triggers; FadingOut and FadingIn together form the lock
// window. There is no path back to Idle other than the second timer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFadingOut:
		return "FadingOut"
	case PhaseFadingIn:
		return "FadingIn"
	default:
		return "Unknown"
	}
}

// Locked reports whether the phase belongs to the lock window.
func (p Phase) Locked() bool {
	return p != PhaseIdle
}

// Direction selects the neighbour for manual navigation.
type Direction int

const (
	Next Direction = iota
	Previous
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "unknown"
	}
}

// Trigger identifies what started a transition.
type Trigger int

const (
	TriggerAdvance Trigger = iota
	TriggerScroll
	TriggerSelect
	TriggerAutoplay
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerAdvance:
		return "advance"
	case TriggerScroll:
		return "scroll"
	case TriggerSelect:
		return "select"
	case TriggerAutoplay:
		return "autoplay"
	default:
		return "unknown"
	}
}
