// Package player defines the media element contract the feed drives, with a
// test double. Backends live in sub-packages.
package player

import "errors"

// ErrReleased is returned by commands issued to an element that was closed or
// replaced by a newer one.
var ErrReleased = errors.New("media element released")

// Options are the declarative bindings applied when a source is opened.
type Options struct {
	Muted    bool
	Autoplay bool
}

// Element is one loaded media source. Play state may change without any call
// from this process (autoplay, media keys, the player window), so listeners
// must follow the event stream rather than their own commands.
type Element interface {
	Source() string
	Play() error
	Pause() error
	// Paused returns the element's live paused flag.
	Paused() bool
	SetMuted(muted bool) error
	Muted() bool
	Subscribe() *Subscription
	Unsubscribe(sub *Subscription)
	Close() error
}

// Backend opens sources into elements. Opening a new source supersedes the
// previous element.
type Backend interface {
	Open(source string, opts Options) (Element, error)
	Close() error
}
