package keymap

import "strconv"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "feed", "playback", "transcript"
}

// Bindings contains all key bindings for the application.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Feed
	{ActionNextVideo, []string{"j", "down", "pgdown"}, "Next video", "feed"},
	{ActionPrevVideo, []string{"k", "up", "pgup"}, "Previous video", "feed"},
	{ActionSelectVideo, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Jump to video", "feed"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", "playback"},

	// Transcript
	{ActionTranscriptDown, []string{"ctrl+d"}, "Scroll transcript down", "transcript"},
	{ActionTranscriptUp, []string{"ctrl+u"}, "Scroll transcript up", "transcript"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// SelectIndex returns the zero-based feed index for a digit key.
func SelectIndex(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > 9 || len(key) != 1 {
		return 0, false
	}
	return n - 1, true
}

// DisplayKey returns the key as it should appear in help text.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
