package mpv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/llehouerou/temptok/internal/player"
)

// element is the view of the mpv process for one loaded source. Once a newer
// source is opened it is released and rejects commands.
type element struct {
	player.Hub

	backend *Backend
	source  string

	mu       sync.Mutex
	loaded   bool
	paused   bool
	muted    bool
	released bool
}

func (e *element) Source() string { return e.source }

func (e *element) Play() error { return e.setPause(false) }

func (e *element) Pause() error { return e.setPause(true) }

func (e *element) setPause(pause bool) error {
	if e.isReleased() {
		return player.ErrReleased
	}
	return e.backend.conn.Set("pause", pause)
}

// Paused asks mpv for the live value and falls back to the last observed one.
func (e *element) Paused() bool {
	if !e.isReleased() {
		if v, err := e.backend.conn.Get("pause"); err == nil {
			if paused, ok := v.(bool); ok {
				return paused
			}
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *element) SetMuted(muted bool) error {
	if e.isReleased() {
		return player.ErrReleased
	}
	if err := e.backend.conn.Set("mute", muted); err != nil {
		return err
	}
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
	return nil
}

func (e *element) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Subscribe registers a listener. If the file is already playing, the new
// listener is told so, the way a late listener on an autoplaying video would
// still see its state.
func (e *element) Subscribe() *player.Subscription {
	sub := e.Hub.Subscribe()
	e.mu.Lock()
	replay := e.loaded && !e.paused && !e.released
	e.mu.Unlock()
	if replay {
		e.Emit(player.Event{Kind: player.EventPlay, Source: e.source})
	}
	return sub
}

// Close detaches listeners. The file keeps playing until the next Open, so
// swapping sources never flashes an idle window.
func (e *element) Close() error {
	e.release()
	return nil
}

func (e *element) release() {
	e.mu.Lock()
	if e.released {
		e.mu.Unlock()
		return
	}
	e.released = true
	e.mu.Unlock()
	e.CloseAll()
}

func (e *element) isReleased() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.released
}

func (e *element) observePaused(paused bool) {
	e.mu.Lock()
	changed := e.paused != paused
	e.paused = paused
	emit := e.loaded && changed && !e.released
	e.mu.Unlock()
	if !emit {
		return
	}
	kind := player.EventPlay
	if paused {
		kind = player.EventPause
	}
	e.Emit(player.Event{Kind: kind, Source: e.source})
}

func (e *element) observeLoaded() {
	e.mu.Lock()
	if e.loaded || e.released {
		e.mu.Unlock()
		return
	}
	e.loaded = true
	playing := !e.paused
	e.mu.Unlock()
	if playing {
		e.Emit(player.Event{Kind: player.EventPlay, Source: e.source})
	}
}

// observeEnd maps mpv's end-file reasons onto element events. An eof before
// this element's file loaded belongs to the previous file and is ignored.
func (e *element) observeEnd(reason, fileErr string) {
	e.mu.Lock()
	loaded := e.loaded
	released := e.released
	wasPlaying := !e.paused
	if reason == "eof" && loaded {
		e.paused = true
		e.loaded = false
	}
	e.mu.Unlock()
	if released {
		return
	}

	switch reason {
	case "eof":
		if !loaded {
			return
		}
		if wasPlaying {
			e.Emit(player.Event{Kind: player.EventPause, Source: e.source})
		}
		e.Emit(player.Event{Kind: player.EventEnded, Source: e.source})
	case "error":
		err := errors.New("playback failed")
		if fileErr != "" {
			err = fmt.Errorf("playback failed: %s", fileErr)
		}
		e.Emit(player.Event{Kind: player.EventError, Source: e.source, Err: err})
	}
}

var _ player.Element = (*element)(nil)
