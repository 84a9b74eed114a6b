package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/temptok/internal/catalog"
)

const appName = "temptok"

type Config struct {
	Location string `koanf:"location"` // feed title shown above the labels

	Feed    FeedConfig    `koanf:"feed"`
	Player  PlayerConfig  `koanf:"player"`
	Log     LogConfig     `koanf:"log"`
	Journal JournalConfig `koanf:"journal"`

	// Videos replaces the built-in feed when non-empty.
	Videos []VideoConfig `koanf:"videos"`
}

// FeedConfig tunes navigation.
type FeedConfig struct {
	FadeMS          int     `koanf:"fade_ms"`          // each half of a transition (default: 500)
	ScrollThreshold float64 `koanf:"scroll_threshold"` // minimum |delta| of a swipe (default: 25)
	WheelDelta      float64 `koanf:"wheel_delta"`      // delta reported per wheel notch (default: 100)
}

// PlayerConfig holds mpv settings.
type PlayerConfig struct {
	Executable string   `koanf:"executable"` // default "mpv"
	Args       []string `koanf:"args"`       // extra mpv arguments
	Socket     string   `koanf:"socket"`     // IPC socket path (default: XDG runtime dir)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: XDG state dir
}

// JournalConfig holds the playback journal settings.
type JournalConfig struct {
	Disabled bool   `koanf:"disabled"`
	Path     string `koanf:"path"` // default: XDG data dir
}

// VideoConfig is one [[videos]] table.
type VideoConfig struct {
	Source     string `koanf:"source"`
	Label      string `koanf:"label"`
	Transcript string `koanf:"transcript"`
}

func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles loads the given TOML files in order; later files override earlier
// ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Journal.Path = expandPath(cfg.Journal.Path)
	cfg.Player.Socket = expandPath(cfg.Player.Socket)
	for i, v := range cfg.Videos {
		cfg.Videos[i].Source = expandPath(strings.TrimSpace(v.Source))
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/temptok/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLocation returns the feed title with the default applied.
func (c *Config) GetLocation() string {
	if strings.TrimSpace(c.Location) == "" {
		return catalog.DefaultLocation
	}
	return c.Location
}

// GetFeedConfig returns the feed configuration with defaults applied.
func (c *Config) GetFeedConfig() FeedConfig {
	cfg := c.Feed
	if cfg.FadeMS <= 0 {
		cfg.FadeMS = 500
	}
	if cfg.ScrollThreshold <= 0 {
		cfg.ScrollThreshold = 25
	}
	if cfg.WheelDelta <= 0 {
		cfg.WheelDelta = 100
	}
	return cfg
}

// FadeDuration returns the configured fade as a duration.
func (f FeedConfig) FadeDuration() time.Duration {
	return time.Duration(f.FadeMS) * time.Millisecond
}

// GetLogFile returns the log file path with the default applied.
func (c *Config) GetLogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// GetJournalPath returns the journal database path with the default applied.
func (c *Config) GetJournalPath() (string, error) {
	if c.Journal.Path != "" {
		return c.Journal.Path, nil
	}
	return xdg.DataFile(filepath.Join(appName, "journal.db"))
}

// Catalog builds the feed from [[videos]], or returns the built-in feed.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if len(c.Videos) == 0 {
		return catalog.Default(), nil
	}
	entries := make([]catalog.Entry, len(c.Videos))
	for i, v := range c.Videos {
		entries[i] = catalog.Entry{
			SourceURL:  v.Source,
			Label:      v.Label,
			Transcript: v.Transcript,
		}
	}
	return catalog.New(entries)
}
