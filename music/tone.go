package music

import (
	"fmt"
	"strconv"
)

// Named octaves
const (
	OctaveSubContra = 0
	OctaveContra    = 1
	OctaveGreat     = 2
	OctaveSmall     = 3
	OctaveOneLine   = 4
	OctaveMiddle    = OctaveOneLine
	OctaveTwoLine   = 5
	OctaveThreeLine = 6
	OctaveFourLine  = 7
	OctaveFiveLine  = 8
)

// Tone is a spelled pitch: letter, accidental and octave.
type Tone struct {
	letter     Letter
	alteration Alteration
	octave     int
	value      int
}

// BaseTone is the tuning reference, A4.
var BaseTone = MustTone(A, Natural, OctaveOneLine)

// CalcValue returns the absolute semitone number of a spelling, C0 = 0.
func CalcValue(letter Letter, alteration Alteration, octave int) int {
	return octave*SemitonesInOctave + letter.SemitonesFromC() + int(alteration)
}

func NewTone(letter Letter, alteration Alteration, octave int) (Tone, error) {
	if !letter.Valid() {
		return Tone{}, fmt.Errorf("tone letter %d: %w", letter, ErrInvalidArgument)
	}
	return Tone{
		letter:     letter,
		alteration: alteration,
		octave:     octave,
		value:      CalcValue(letter, alteration, octave),
	}, nil
}

// MustTone is NewTone for known-good arguments. It panics on error.
func MustTone(letter Letter, alteration Alteration, octave int) Tone {
	t, err := NewTone(letter, alteration, octave)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tone) Letter() Letter         { return t.letter }
func (t Tone) Alteration() Alteration { return t.alteration }
func (t Tone) Octave() int            { return t.octave }

// Value is the absolute semitone number, C0 = 0.
func (t Tone) Value() int { return t.value }

// Distance is the signed semitone count from another tone to t.
func (t Tone) Distance(from Tone) int {
	return t.value - from.value
}

// Transpose moves the tone by an unadjusted interval. The letter always
// moves by the interval's step count; the accidental absorbs whatever is
// needed to land on the right semitone, so spellings like "Fx" or "Cbb"
// come out naturally.
func (t Tone) Transpose(interval Interval, direction Direction) (Tone, error) {
	if interval.IsAdjusted() {
		return Tone{}, fmt.Errorf("transpose %s by %s: tones only move by unadjusted intervals: %w",
			t.Code(true), interval.Code(true), ErrUnsupportedAdjustment)
	}

	dir := int(direction)
	letterWithOverflow := int(t.letter) + interval.Steps()*dir
	octaveRollOver := floorDiv(letterWithOverflow, LettersInOctave)
	letter := letterAt(letterWithOverflow)
	octave := t.octave + interval.Octaves()*dir + octaveRollOver
	naturalValue := CalcValue(letter, Natural, octave)
	value := t.value + interval.Semitones()*dir

	return NewTone(letter, Alteration(value-naturalValue), octave)
}

// Alter shifts the accidental by delta semitones.
func (t Tone) Alter(delta Alteration) Tone {
	if delta == 0 {
		return t
	}
	return MustTone(t.letter, t.alteration+delta, t.octave)
}

func (t Tone) Unaltered() Tone {
	if t.alteration == Natural {
		return t
	}
	return MustTone(t.letter, Natural, t.octave)
}

// Code renders letter, accidental and octave, e.g. "G#3" or "Cn4".
func (t Tone) Code(concise bool) string {
	return t.letter.Code() + t.alteration.Code(concise) + strconv.Itoa(t.octave)
}

func (t Tone) String() string {
	return t.Code(true)
}

// ParseTone would read a tone code back. Decoding is not supported.
func ParseTone(code string) (Tone, error) {
	return Tone{}, fmt.Errorf("parse tone %q: %w", code, ErrNotImplemented)
}
