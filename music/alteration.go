package music

import "strings"

// Alteration is a chromatic accidental in semitones: positive sharpens,
// negative flattens. Any integer is allowed.
type Alteration int

const (
	DoubleFlat  Alteration = -2
	Flat        Alteration = -1
	Natural     Alteration = 0
	Sharp       Alteration = 1
	DoubleSharp Alteration = 2
)

// Accidental glyphs
const (
	CodeDoubleFlat  = "bb"
	CodeFlat        = "b"
	CodeNatural     = "n"
	CodeSharp       = "#"
	CodeDoubleSharp = "x"
)

var knownAlterations = [5]struct {
	name string
	code string
}{
	{"doubleFlat", CodeDoubleFlat},
	{"flat", CodeFlat},
	{"natural", CodeNatural},
	{"sharp", CodeSharp},
	{"doubleSharp", CodeDoubleSharp},
}

func (a Alteration) known() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

// Name returns the accidental's name for -2..+2 and "" otherwise.
func (a Alteration) Name() string {
	if !a.known() {
		return ""
	}
	return knownAlterations[a-DoubleFlat].name
}

// Code renders the accidental. Natural is "" when concise and "n" otherwise.
// Runs of sharps collapse pairwise into "x"; flats are left as is since
// "bb" is already the double-flat glyph.
func (a Alteration) Code(concise bool) string {
	if a == Natural {
		if concise {
			return ""
		}
		return CodeNatural
	}

	if a.known() {
		return knownAlterations[a-DoubleFlat].code
	}

	glyph, size := CodeSharp, int(a)
	if a < 0 {
		glyph, size = CodeFlat, -size
	}

	return strings.ReplaceAll(strings.Repeat(glyph, size), CodeSharp+CodeSharp, CodeDoubleSharp)
}

func (a Alteration) String() string {
	return a.Code(false)
}
