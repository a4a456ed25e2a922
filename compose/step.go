package compose

import (
	"fmt"

	"go-tonal/music"
)

// Degree is a scale degree, tonic = 0.
type Degree int

const (
	Tonic Degree = iota
	Supertonic
	Mediant
	Subdominant
	Dominant
	Submediant
	Subtonic
)

var degreeNames = [music.LettersInOctave]string{
	"tonic", "supertonic", "mediant", "subdominant", "dominant", "submediant", "subtonic",
}

func (d Degree) Valid() bool {
	return d >= Tonic && d <= Subtonic
}

func (d Degree) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Degree(%d)", int(d))
	}
	return degreeNames[d]
}

// Step is a scale degree with an accidental. Octave is relative to the
// tonality: 0 is the tonic's octave, 1 one octave higher, -1 one lower.
type Step struct {
	Degree     Degree
	Alteration music.Alteration
	Octave     int
}

func NewStep(degree Degree, alteration music.Alteration, octave int) (Step, error) {
	if !degree.Valid() {
		return Step{}, fmt.Errorf("step degree %d: %w", degree, music.ErrInvalidArgument)
	}
	return Step{Degree: degree, Alteration: alteration, Octave: octave}, nil
}
