// Package catalog holds the static, ordered list of videos shown in the feed.
package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmpty is returned when a catalog is built without entries.
var ErrEmpty = errors.New("catalog has no entries")

// Entry describes one video of the feed.
type Entry struct {
	SourceURL  string
	Label      string
	Transcript string
}

// Catalog is an immutable, non-empty sequence of entries addressed 0..Len()-1.
type Catalog struct {
	entries []Entry
}

// New validates entries and returns a catalog holding a private copy of them.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return &Catalog{entries: append([]Entry(nil), entries...)}, nil
}

// MustNew is like New but panics on invalid input. Used for built-in feeds.
func MustNew(entries []Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries (always >= 1).
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i. It panics if i is out of range,
// like a slice index would.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries in order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Labels returns the labels in catalog order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}
	return labels
}

func validate(e Entry) error {
	if strings.TrimSpace(e.Label) == "" {
		return errors.New("label is empty")
	}
	src := strings.TrimSpace(e.SourceURL)
	if src == "" {
		return errors.New("source is empty")
	}
	u, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("source %q: %w", src, err)
	}
	// Bare paths are fine for the player; anything with a scheme needs a target.
	if u.Scheme != "" && u.Scheme != "file" && u.Host == "" && u.Opaque == "" {
		return fmt.Errorf("source %q: missing host", src)
	}
	return nil
}
