// Package mpv implements player.Backend on top of an mpv process controlled
// through its JSON IPC socket.
package mpv

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/dexterlb/mpvipc"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/temptok/internal/player"
)

const (
	pausePropertyID = 1
	socketWait      = 100 * time.Millisecond
)

// ErrNotRunning is returned when mpv is not connected.
var ErrNotRunning = errors.New("mpv not running")

// Config describes how to launch mpv.
type Config struct {
	Executable   string        // default "mpv"
	ExtraArgs    []string      // appended to the built-in arguments
	SocketPath   string        // default $XDG_RUNTIME_DIR/temptok/mpv.sock
	StartTimeout time.Duration // default 5s
}

// Backend owns one mpv process. Every Open replaces the loaded file and
// supersedes the previously returned element.
type Backend struct {
	cfg  Config
	cmd  *exec.Cmd
	conn *mpvipc.Connection

	mu      sync.Mutex
	current *element
	closed  bool
	exited  chan struct{}
}

// Start launches mpv and connects to its IPC socket.
func Start(cfg Config) (*Backend, error) {
	if cfg.Executable == "" {
		cfg.Executable = "mpv"
	}
	if cfg.StartTimeout <= 0 {
		cfg.StartTimeout = 5 * time.Second
	}
	if cfg.SocketPath == "" {
		path, err := xdg.RuntimeFile(filepath.Join("temptok", "mpv.sock"))
		if err != nil {
			return nil, fmt.Errorf("resolve mpv socket path: %w", err)
		}
		cfg.SocketPath = path
	}
	_ = os.Remove(cfg.SocketPath)

	args := append([]string{
		"--idle=yes",
		"--force-window=yes",
		"--keep-open=no",
		"--loop-file=no",
		"--osc=no",
		"--osd-level=0",
		"--no-terminal",
		"--input-ipc-server=" + cfg.SocketPath,
	}, cfg.ExtraArgs...)

	cmd := exec.Command(cfg.Executable, args...)
	cmd.Stdout = log.With().Str("component", "mpv").Logger()
	cmd.Stderr = log.With().Str("component", "mpv").Logger()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}
	log.Info().Int("pid", cmd.Process.Pid).Str("socket", cfg.SocketPath).Msg("mpv started")

	b := &Backend{cfg: cfg, cmd: cmd, exited: make(chan struct{})}
	go b.wait()

	if err := b.connect(); err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}
	return b, nil
}

func (b *Backend) connect() error {
	deadline := time.Now().Add(b.cfg.StartTimeout)
	for {
		if _, err := os.Stat(b.cfg.SocketPath); err == nil {
			break
		}
		select {
		case <-b.exited:
			return errors.New("mpv exited before opening its IPC socket")
		default:
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("mpv IPC socket %s not ready after %s", b.cfg.SocketPath, b.cfg.StartTimeout)
		}
		time.Sleep(socketWait)
	}

	conn := mpvipc.NewConnection(b.cfg.SocketPath)
	if err := conn.Open(); err != nil {
		return fmt.Errorf("connect to mpv IPC: %w", err)
	}
	if _, err := conn.Call("observe_property", pausePropertyID, "pause"); err != nil {
		conn.Close()
		return fmt.Errorf("observe mpv pause property: %w", err)
	}
	b.conn = conn
	go b.listenEvents()
	return nil
}

func (b *Backend) wait() {
	err := b.cmd.Wait()
	close(b.exited)

	b.mu.Lock()
	closed := b.closed
	cur := b.current
	b.mu.Unlock()
	if closed {
		return
	}
	log.Warn().Err(err).Msg("mpv exited")
	if cur != nil {
		cur.Emit(player.Event{Kind: player.EventError, Source: cur.source, Err: errors.New("mpv exited")})
	}
}

// Open loads source, replacing whatever was playing.
func (b *Backend) Open(source string, opts player.Options) (player.Element, error) {
	b.mu.Lock()
	if b.closed || b.conn == nil {
		b.mu.Unlock()
		return nil, ErrNotRunning
	}
	if b.current != nil {
		b.current.release()
	}
	el := &element{
		backend: b,
		source:  source,
		paused:  !opts.Autoplay,
		muted:   opts.Muted,
	}
	b.current = el
	b.mu.Unlock()

	if err := b.conn.Set("mute", opts.Muted); err != nil {
		el.release()
		return nil, fmt.Errorf("set mute: %w", err)
	}
	if err := b.conn.Set("pause", !opts.Autoplay); err != nil {
		el.release()
		return nil, fmt.Errorf("set pause: %w", err)
	}
	if _, err := b.conn.Call("loadfile", source, "replace"); err != nil {
		el.release()
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	log.Debug().Str("source", source).Bool("muted", opts.Muted).Msg("mpv loadfile")
	return el, nil
}

// Close quits mpv and releases the current element.
func (b *Backend) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	cur := b.current
	b.current = nil
	b.mu.Unlock()

	if cur != nil {
		cur.release()
	}
	if b.conn != nil {
		_, _ = b.conn.Call("quit")
		b.conn.Close()
	}
	select {
	case <-b.exited:
	case <-time.After(2 * time.Second):
		_ = b.cmd.Process.Kill()
	}
	_ = os.Remove(b.cfg.SocketPath)
	return nil
}

func (b *Backend) currentElement() *element {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *Backend) listenEvents() {
	events, stop := b.conn.NewEventListener()
	defer close(stop)

	for event := range events {
		cur := b.currentElement()
		if cur == nil {
			continue
		}
		switch event.Name {
		case "property-change":
			if event.ID != pausePropertyID {
				continue
			}
			if paused, ok := event.Data.(bool); ok {
				cur.observePaused(paused)
			}
		case "file-loaded":
			cur.observeLoaded()
		case "end-file":
			cur.observeEnd(endReason(event), fileError(event))
		}
	}
}

// endReasons maps the numeric end-file reasons older mpv builds send.
var endReasons = map[int]string{
	0: "eof",
	1: "stop",
	2: "quit",
	3: "error",
	4: "redirect",
}

func endReason(e *mpvipc.Event) string {
	switch r := e.ExtraData["reason"].(type) {
	case string:
		return r
	case float64:
		if name, ok := endReasons[int(r)]; ok {
			return name
		}
	}
	return "unknown"
}

func fileError(e *mpvipc.Event) string {
	if s, ok := e.ExtraData["file_error"].(string); ok {
		return s
	}
	return ""
}

var _ player.Backend = (*Backend)(nil)
