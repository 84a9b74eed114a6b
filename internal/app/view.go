package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/temptok/internal/keymap"
	"github.com/llehouerou/temptok/internal/ui/render"
	"github.com/llehouerou/temptok/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	t := styles.T()
	s := t.S()

	var b strings.Builder

	b.WriteString(styles.ApplyBoldGradient(render.Truncate(m.Location, m.Width), t.Primary, t.Secondary))
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(render.Separator(m.Width)))
	b.WriteString("\n")

	for i, entry := range m.Feed.Entries() {
		b.WriteString(m.renderLabel(i, entry.Label))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderPanel())
	b.WriteString("\n")

	if m.ShowHelp {
		b.WriteString(m.renderHelp())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m Model) renderLabel(i int, label string) string {
	s := styles.T().S()
	text := render.Truncate(fmt.Sprintf("%d. %s", i+1, label), m.Width-2)
	if i == m.Sequencer.Index() {
		return s.Current.Render("▶ " + text)
	}
	return s.Muted.Render("  " + text)
}

// renderPanel draws the video panel. It fades while the outgoing video fades
// out, hiding the source swap.
func (m Model) renderPanel() string {
	faded := m.Sequencer.IsFadingOut()
	width := m.panelWidth() - panelHorizontalChrome

	state := "▶ playing"
	if m.Playback.IsPaused() {
		state = "⏸ paused"
	}
	sound := "sound on"
	if m.Playback.IsMuted() {
		sound = "muted"
	}
	right := state + "  " + sound
	title := render.Row(render.Truncate(m.Current().Label, max(width-lipgloss.Width(right)-1, 0)), right, width)

	content := title + "\n\n" + m.Transcript.View()

	return styles.PanelStyle(faded).
		Width(width + 2). // lipgloss width includes padding
		Height(m.panelHeight() - 2).
		Render(content)
}

func (m Model) renderHelp() string {
	var parts []string
	for _, ctx := range []string{"feed", "playback", "transcript", "global"} {
		for _, b := range keymap.ByContext(ctx) {
			keys := m.Keys.KeysFor(b.Action)
			if len(keys) == 0 {
				continue
			}
			shown := keymap.DisplayKey(keys[0])
			if b.Action == keymap.ActionSelectVideo {
				shown = "1-9"
			}
			parts = append(parts, shown+" "+strings.ToLower(b.Description))
		}
	}
	return styles.T().S().Subtle.Render(render.Truncate(strings.Join(parts, " · "), m.Width))
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		msg := m.ErrorMsg
		if !m.ErrorAt.IsZero() {
			msg += " (" + humanize.RelTime(m.ErrorAt, m.clock(), "ago", "from now") + ")"
		}
		return s.Error.Render(render.Truncate(msg, m.Width))
	}

	pos := fmt.Sprintf("%d/%d", m.Sequencer.Index()+1, m.Feed.Len())
	hint := "? help · q quit"
	return s.Subtle.Render(render.Row(pos, hint, m.Width))
}
