// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Feed operations
	OpFeedLoad Op = "load video feed"

	// Playback operations
	OpVideoLoad  Op = "load video"
	OpVideoPlay  Op = "play video"
	OpVideoPause Op = "pause video"
	OpVideoMute  Op = "change mute"

	// Player backend
	OpPlayerStart Op = "start mpv"
	OpPlayerStop  Op = "stop mpv"

	// Journal operations
	OpJournalOpen   Op = "open playback journal"
	OpJournalRecord Op = "record playback"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
