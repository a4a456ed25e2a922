package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"go-tonal/music"
	"go-tonal/theme"
)

func TestRenderKeyboardMarksSoundingTone(t *testing.T) {
	th := theme.New(theme.Plasma)
	c4 := music.MustTone(music.C, music.Natural, 4)
	e4 := music.MustTone(music.E, music.Natural, 4)

	out := RenderKeyboard(th, 4, 4, e4, []music.Tone{c4, e4})
	if got := strings.Count(out, string(th.Symbols.Sounding)); got != 1 {
		t.Errorf("sounding marks = %d, want 1", got)
	}
	if got := strings.Count(out, string(th.Symbols.InScale)); got != 1 {
		t.Errorf("scale marks = %d, want 1 (C4 only, E4 is sounding)", got)
	}
	if w := lipgloss.Width(out); w != 12 {
		t.Errorf("width = %d, want 12", w)
	}
}

func TestRenderKeyboardSpansOctaves(t *testing.T) {
	th := theme.New(theme.Plasma)
	out := RenderKeyboard(th, 3, 5, music.BaseTone, nil)
	if w := lipgloss.Width(out); w != 3*12+2 {
		t.Errorf("width = %d, want 38", w)
	}
}

func TestKeyboardSpan(t *testing.T) {
	tests := []struct {
		tone     music.Tone
		width    int
		from, to int
	}{
		{music.BaseTone, 3, 3, 5},
		{music.MustTone(music.C, music.Natural, 0), 1, 0, 0},
		{music.MustTone(music.B, music.Natural, -1), 3, -2, 0},
	}
	for _, tt := range tests {
		from, to := KeyboardSpan(tt.tone, tt.width)
		if from != tt.from || to != tt.to {
			t.Errorf("KeyboardSpan(%s, %d) = %d..%d, want %d..%d", tt.tone, tt.width, from, to, tt.from, tt.to)
		}
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{{
		Title: "Tone",
		Keys:  []KeyBinding{{Key: "up", Desc: "transpose up"}},
	}})
	if !strings.Contains(out, "Tone\n  up           transpose up") {
		t.Errorf("help = %q", out)
	}
}
