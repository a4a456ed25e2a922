package theme

import (
	"github.com/charmbracelet/lipgloss"

	"go-tonal/music"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	WhiteKey  rune // ▯ natural key, not sounding
	BlackKey  rune // ▮ sharp/flat key, not sounding
	Sounding  rune // ● key of the current tone
	InScale   rune // ◆ key belongs to the tonality
	Separator rune // │ between octaves
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			WhiteKey:  '▯',
			BlackKey:  '▮',
			Sounding:  '●',
			InScale:   '◆',
			Separator: '│',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted    = 0.15
	RoleFG       = 0.55
	RoleAccent   = 0.45
	RoleFlat     = 0.3
	RoleSharp    = 0.7
	RoleAdjusted = 0.85
	RoleSuccess  = 1.0
)

func (t *Theme) FG() lipgloss.Color       { return t.Color(RoleFG) }
func (t *Theme) Accent() lipgloss.Color   { return t.Color(RoleAccent) }
func (t *Theme) Muted() lipgloss.Color    { return t.Color(RoleMuted) }
func (t *Theme) Adjusted() lipgloss.Color { return t.Color(RoleAdjusted) }
func (t *Theme) Success() lipgloss.Color  { return t.Color(RoleSuccess) }

// AlterationColor colors a spelling by its accidental: flats toward the cool
// end of the palette, sharps toward the warm end.
func (t *Theme) AlterationColor(a music.Alteration) lipgloss.Color {
	switch {
	case a < 0:
		return t.Color(RoleFlat)
	case a > 0:
		return t.Color(RoleSharp)
	}
	return t.FG()
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return lipgloss.Color(t.Palette.Lookup(norm).Hex())
}

// Tone renders a tone code in its accidental's color
func (t *Theme) Tone(tone music.Tone, concise bool) string {
	return lipgloss.NewStyle().Foreground(t.AlterationColor(tone.Alteration())).Render(tone.Code(concise))
}
