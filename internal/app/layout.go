package app

import (
	"github.com/llehouerou/temptok/internal/ui/render"
)

const (
	headerHeight = 2 // location + separator
	labelTop     = headerHeight
	gapHeight    = 1 // blank line between labels and panel
	statusHeight = 1
	helpHeight   = 1

	// panel chrome: top/bottom border, title row and the blank row under it
	panelChrome = 4
	// left/right border plus horizontal padding
	panelHorizontalChrome = 4
)

// labelAt maps a screen row to the feed index whose label is drawn there.
func (m Model) labelAt(y int) (int, bool) {
	i := y - labelTop
	if i < 0 || i >= m.Feed.Len() {
		return 0, false
	}
	return i, true
}

func (m Model) panelHeight() int {
	used := headerHeight + m.Feed.Len() + gapHeight + statusHeight
	if m.ShowHelp {
		used += helpHeight
	}
	return max(m.Height-used, panelChrome+1)
}

func (m Model) panelWidth() int {
	return max(m.Width, panelHorizontalChrome+1)
}

// resizeTranscript fits the transcript viewport into the panel and re-wraps
// the current text for the new width.
func (m *Model) resizeTranscript() {
	m.Transcript.Width = m.panelWidth() - panelHorizontalChrome
	m.Transcript.Height = m.panelHeight() - panelChrome
	offset := m.Transcript.YOffset
	m.Transcript.SetContent(render.Wrap(m.Current().Transcript, m.Transcript.Width))
	m.Transcript.SetYOffset(offset)
}
