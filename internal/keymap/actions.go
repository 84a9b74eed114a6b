// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Feed navigation
	ActionNextVideo   Action = "next_video"
	ActionPrevVideo   Action = "prev_video"
	ActionSelectVideo Action = "select_video" // 1-9, index taken from the key

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionToggleMute Action = "toggle_mute"

	// Transcript scrolling
	ActionTranscriptUp   Action = "transcript_up"
	ActionTranscriptDown Action = "transcript_down"
)
