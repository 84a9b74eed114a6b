package styles

import "github.com/charmbracelet/lipgloss"

// fadedAmount is how far the video panel blends towards the background while
// the outgoing video fades out.
const fadedAmount = 0.8

// PanelStyle returns the video panel style. A faded panel has its border
// and text pulled towards the background.
func PanelStyle(faded bool) lipgloss.Style {
	t := T()
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if faded {
		return style.
			BorderForeground(t.BorderFaded).
			Foreground(Fade(t.FgBase, t.BgBase, fadedAmount))
	}
	return style.
		BorderForeground(t.Border).
		Foreground(t.FgBase)
}
