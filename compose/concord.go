package compose

import (
	"fmt"
	"sort"
	"strings"

	"go-tonal/music"
)

// Concord delimiters
const (
	ConcordPrefix    = "["
	ConcordPostfix   = "]"
	ConcordSeparator = " "
)

// Concord is a set of pitches sounding together, kept sorted from lowest
// to highest frequency.
type Concord struct {
	duration Duration
	pitches  []music.Pitch
}

// CodeOptions controls Concord.Code.
type CodeOptions struct {
	Concise       bool
	PadWithSpaces bool
}

// DefaultCodeOptions renders "[ C4 E4 G4 ]".
var DefaultCodeOptions = CodeOptions{Concise: true, PadWithSpaces: true}

func NewConcord(duration Duration, pitches ...music.Pitch) Concord {
	sorted := make([]music.Pitch, len(pitches))
	copy(sorted, pitches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequency() < sorted[j].Frequency()
	})
	return Concord{duration: duration, pitches: sorted}
}

// ConcordOf groups notes; their own durations are dropped in favour of d.
func ConcordOf(duration Duration, notes ...Note) Concord {
	pitches := make([]music.Pitch, len(notes))
	for i, n := range notes {
		pitches[i] = n.Pitch
	}
	return NewConcord(duration, pitches...)
}

func (c Concord) Duration() Duration { return c.duration }
func (c Concord) Len() int           { return len(c.pitches) }

func (c Concord) Has(i int) bool {
	return i >= 0 && i < len(c.pitches)
}

// Pitch returns the i-th pitch counting from the lowest.
func (c Concord) Pitch(i int) (music.Pitch, error) {
	if !c.Has(i) {
		return music.Pitch{}, fmt.Errorf("concord pitch %d of %d: %w", i, len(c.pitches), music.ErrItemNotFound)
	}
	return c.pitches[i], nil
}

// Pitches returns a copy, lowest first.
func (c Concord) Pitches() []music.Pitch {
	out := make([]music.Pitch, len(c.pitches))
	copy(out, c.pitches)
	return out
}

// Notes splits the concord into notes of its duration.
func (c Concord) Notes() []Note {
	out := make([]Note, len(c.pitches))
	for i, p := range c.pitches {
		out[i] = NewNote(p, c.duration)
	}
	return out
}

func (c Concord) Transpose(interval music.Interval, direction music.Direction) (Concord, error) {
	moved := make([]music.Pitch, len(c.pitches))
	for i, p := range c.pitches {
		next, err := p.Transpose(interval, direction)
		if err != nil {
			return Concord{}, fmt.Errorf("concord pitch %d: %w", i, err)
		}
		moved[i] = next
	}
	return NewConcord(c.duration, moved...), nil
}

func (c Concord) Code(opts CodeOptions) string {
	codes := make([]string, len(c.pitches))
	for i, p := range c.pitches {
		codes[i] = p.Code(opts.Concise)
	}

	pad := ""
	if opts.PadWithSpaces {
		pad = " "
	}

	return ConcordPrefix + pad + strings.Join(codes, ConcordSeparator) + pad + ConcordPostfix
}

func (c Concord) String() string {
	return c.Code(DefaultCodeOptions)
}
