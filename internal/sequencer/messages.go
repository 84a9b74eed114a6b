package sequencer

// FadeOutDoneMsg is delivered when the first half of a transition elapses.
type FadeOutDoneMsg struct {
	ID uint64
}

// FadeInDoneMsg is delivered when the second half of a transition elapses.
type FadeInDoneMsg struct {
	ID uint64
}

// IndexChangedMsg is emitted at the instant the current index swaps.
// The binding layer reacts to it by loading the new source.
type IndexChangedMsg struct {
	Previous int
	Current  int
	Trigger  Trigger
}

// UnlockedMsg is emitted when a transition completes and input is accepted again.
type UnlockedMsg struct {
	Index int
}
