//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Adapter serves a Controller over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(c *Controller) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("temptok", &rootAdapter{}, &playerAdapter{ctrl: c}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "TempTok", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"video/mp4", "video/webm"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctrl *Controller
}

func (p *playerAdapter) Next() error {
	p.ctrl.Dispatch(CommandNext)
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctrl.Dispatch(CommandPrevious)
	return nil
}

func (p *playerAdapter) Pause() error {
	p.ctrl.Dispatch(CommandPause)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctrl.Dispatch(CommandPlayPause)
	return nil
}

// Stop pauses; the feed always has a current video.
func (p *playerAdapter) Stop() error {
	p.ctrl.Dispatch(CommandPause)
	return nil
}

func (p *playerAdapter) Play() error {
	p.ctrl.Dispatch(CommandPlay)
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.ctrl.Status().Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.ctrl.Status()
	if s.Source == "" {
		return types.Metadata{}, nil
	}
	return types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(s.Source)),
		Title:       s.Label,
		Album:       s.Location,
		TrackNumber: s.Index + 1,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	s := p.ctrl.Status()
	return !s.Locked && s.CanGoNext(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	s := p.ctrl.Status()
	return !s.Locked && s.CanGoPrevious(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.ctrl.Status().Source != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
