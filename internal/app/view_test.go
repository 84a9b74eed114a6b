package app

import (
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/temptok/internal/ui/testutil"
)

func TestView_EmptyBeforeWindowSize(t *testing.T) {
	m, err := New(testConfig(), Deps{})
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestView_Layout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testConfig())
		view := h.model.View()

		assert.Equal(t, 0, testutil.LineIndex(view, "TempTok for Testville"))
		assert.Equal(t, labelTop, testutil.LineIndex(view, "1. Today"))
		assert.Equal(t, labelTop+2, testutil.LineIndex(view, "3. Weekend"))
		assert.Contains(t, testutil.FindLine(view, "1. Today"), "▶")
		assert.NotContains(t, testutil.FindLine(view, "2. Tomorrow"), "▶")

		assert.True(t, testutil.ContainsLine(view, "Sunny and mild."), "transcript of the current video")
		assert.True(t, testutil.ContainsLine(view, "muted"))
		assert.True(t, testutil.ContainsLine(view, "paused"))
		assert.True(t, testutil.ContainsLine(view, "1/3"))

		lines := testutil.SplitLines(view)
		assert.Len(t, lines, 24, "view fills the terminal height")
		for _, line := range lines {
			assert.LessOrEqual(t, testutil.MeasureWidth(line), 80)
		}
	})
}

func TestView_TracksCurrentVideo(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testConfig())
		h.element().SimulatePlay()
		h.settle()
		h.input(testutil.Key("m"))

		h.input(testutil.Key("j"))
		h.completeTransition()
		h.element().SimulatePlay()
		h.settle()

		view := h.model.View()
		assert.Contains(t, testutil.FindLine(view, "2. Tomorrow"), "▶")
		assert.True(t, testutil.ContainsLine(view, "Rain by noon."))
		assert.False(t, testutil.ContainsLine(view, "Sunny and mild."))
		assert.True(t, testutil.ContainsLine(view, "playing"))
		assert.True(t, testutil.ContainsLine(view, "sound on"))
		assert.True(t, testutil.ContainsLine(view, "2/3"))
	})
}

func TestView_PanelFadesDuringFadeOut(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testConfig())
		idle := h.model.renderPanel()

		h.input(testutil.Key("j"))
		require.True(t, h.model.Sequencer.IsFadingOut())
		faded := h.model.renderPanel()

		assert.Equal(t, testutil.StripANSI(idle), testutil.StripANSI(faded), "same content")
		assert.NotEqual(t, idle, faded, "different colors")

		h.completeTransition()
	})
}

func TestView_ErrorInStatusLine(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testConfig())

		h.element().SimulateError(errCodec)
		h.settle()
		time.Sleep(3 * time.Second)

		status := testutil.SplitLines(h.model.View())
		last := testutil.StripANSI(status[len(status)-1])
		assert.True(t, strings.HasPrefix(last, "Failed to play video 'Today': unsupported codec"))
		assert.Contains(t, last, "ago")
	})
}

func TestView_Help(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testConfig())
		h.model.Width = 200
		h.input(testutil.Key("?"))

		view := h.model.View()
		assert.True(t, testutil.ContainsLine(view, "1-9 jump to video"))
		assert.True(t, testutil.ContainsLine(view, "space play/pause"))
		assert.True(t, testutil.ContainsLine(view, "m mute/unmute"))
	})
}

func TestView_LongTranscriptWrapsAndScrolls(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		long := strings.Repeat("Gusty winds off the harbor through the evening. ", 40)
		cfg := testConfig()
		cfg.Videos[0].Transcript = long
		h := newHarness(t, cfg)

		view := h.model.View()
		for _, line := range testutil.SplitLines(view) {
			assert.LessOrEqual(t, testutil.MeasureWidth(line), 80)
		}

		before := h.model.Transcript.YOffset
		h.input(testutil.Key("ctrl+d"))
		assert.Greater(t, h.model.Transcript.YOffset, before)
	})
}
