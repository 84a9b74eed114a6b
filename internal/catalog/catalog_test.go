package catalog

import (
	"errors"
	"testing"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil) error = %v, want ErrEmpty", err)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
	}{
		{"relative path", Entry{SourceURL: "videos/a.mp4", Label: "A"}, false},
		{"absolute path", Entry{SourceURL: "/srv/a.mp4", Label: "A"}, false},
		{"https url", Entry{SourceURL: "https://cdn.example.com/a.mp4", Label: "A"}, false},
		{"file url", Entry{SourceURL: "file:///srv/a.mp4", Label: "A"}, false},
		{"empty label", Entry{SourceURL: "a.mp4", Label: "  "}, true},
		{"empty source", Entry{SourceURL: "", Label: "A"}, true},
		{"scheme without host", Entry{SourceURL: "https://", Label: "A"}, true},
		{"malformed", Entry{SourceURL: "http://[::1", Label: "A"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Entry{tt.entry})
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_CopiesEntries(t *testing.T) {
	entries := []Entry{{SourceURL: "a.mp4", Label: "A"}}
	c, err := New(entries)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries[0].Label = "changed"

	if c.At(0).Label != "A" {
		t.Errorf("At(0).Label = %q, want A", c.At(0).Label)
	}

	got := c.Entries()
	got[0].Label = "changed"
	if c.At(0).Label != "A" {
		t.Error("Entries() should return a copy")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 3 {
		t.Fatalf("Default().Len() = %d, want 3", c.Len())
	}
	labels := c.Labels()
	want := []string{"Today's forecast", "Hourly breakdown", "10 day breakdown"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}
