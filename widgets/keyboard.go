package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-tonal/music"
	"go-tonal/theme"
)

// black keys within an octave, C = 0
var blackKeys = [music.SemitonesInOctave]bool{1: true, 3: true, 6: true, 8: true, 10: true}

func pitchClass(value int) int {
	pc := value % music.SemitonesInOctave
	if pc < 0 {
		pc += music.SemitonesInOctave
	}
	return pc
}

// RenderKeyboard draws octaves [from, to] as one row of keys. The sounding
// tone is marked, tones of scale are highlighted.
func RenderKeyboard(th *theme.Theme, from, to int, sounding music.Tone, scale []music.Tone) string {
	inScale := make(map[int]bool, len(scale))
	for _, t := range scale {
		inScale[t.Value()] = true
	}

	muted := lipgloss.NewStyle().Foreground(th.Muted())
	accent := lipgloss.NewStyle().Foreground(th.Accent())
	active := lipgloss.NewStyle().Foreground(th.Success()).Bold(true)

	var out strings.Builder
	for octave := from; octave <= to; octave++ {
		if octave > from {
			out.WriteString(muted.Render(string(th.Symbols.Separator)))
		}
		for pc := 0; pc < music.SemitonesInOctave; pc++ {
			value := octave*music.SemitonesInOctave + pc
			switch {
			case value == sounding.Value():
				out.WriteString(active.Render(string(th.Symbols.Sounding)))
			case inScale[value]:
				out.WriteString(accent.Render(string(th.Symbols.InScale)))
			case blackKeys[pc]:
				out.WriteString(muted.Render(string(th.Symbols.BlackKey)))
			default:
				out.WriteString(muted.Render(string(th.Symbols.WhiteKey)))
			}
		}
	}
	return out.String()
}

// RenderToneRow renders tone codes separated by spaces, colored by accidental
func RenderToneRow(th *theme.Theme, tones []music.Tone, concise bool) string {
	codes := make([]string, len(tones))
	for i, t := range tones {
		codes[i] = th.Tone(t, concise)
	}
	return strings.Join(codes, " ")
}

// RenderField renders a "label  value" line with a dimmed label
func RenderField(th *theme.Theme, label, value string) string {
	style := lipgloss.NewStyle().Foreground(th.Muted())
	return fmt.Sprintf("%s %s", style.Render(fmt.Sprintf("%-10s", label)), value)
}

// KeyboardSpan picks an octave window around a tone, clamped to keep the
// strip `width` octaves wide.
func KeyboardSpan(t music.Tone, width int) (from, to int) {
	center := t.Value() / music.SemitonesInOctave
	if t.Value() < 0 && pitchClass(t.Value()) != 0 {
		center--
	}
	from = center - (width-1)/2
	return from, from + width - 1
}
