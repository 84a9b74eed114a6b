// Package mpris exposes the feed on the MPRIS D-Bus interface so desktop
// media keys can drive it.
package mpris

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a media-key request coming from D-Bus.
type Command int

const (
	CommandNext Command = iota
	CommandPrevious
	CommandPlayPause
	CommandPlay
	CommandPause
)

func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandPlayPause:
		return "play-pause"
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	}
	return "unknown"
}

// CommandMsg delivers a Command into the bubbletea update loop. D-Bus calls
// arrive on their own goroutines and never touch feed state directly.
type CommandMsg struct {
	Command Command
}

// Sender is the subset of *tea.Program the controller needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Status is the snapshot MPRIS clients read.
type Status struct {
	Source   string
	Label    string
	Location string
	Index    int
	Count    int
	Playing  bool
	Locked   bool
}

// CanGoNext reports whether a Next command could move the feed.
func (s Status) CanGoNext() bool {
	return s.Count > 0 && s.Index < s.Count-1
}

// CanGoPrevious reports whether a Previous command could move the feed.
func (s Status) CanGoPrevious() bool {
	return s.Index > 0
}

// Controller holds the published status and forwards commands to the
// program. It is safe for concurrent use.
type Controller struct {
	mu     sync.RWMutex
	status Status
	sender Sender
}

func NewController() *Controller {
	return &Controller{}
}

// Attach sets the program that receives commands.
func (c *Controller) Attach(s Sender) {
	c.mu.Lock()
	c.sender = s
	c.mu.Unlock()
}

// Publish replaces the status snapshot.
func (c *Controller) Publish(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// Status returns the last published snapshot.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Dispatch forwards cmd to the attached program. Commands arriving before
// Attach are dropped.
func (c *Controller) Dispatch(cmd Command) {
	c.mu.RLock()
	s := c.sender
	c.mu.RUnlock()
	if s == nil {
		return
	}
	s.Send(CommandMsg{Command: cmd})
}
