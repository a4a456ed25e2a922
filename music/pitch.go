package music

import (
	"fmt"
	"math"
)

// Frequency model constants
const (
	BaseFrequency = 440.0 // Hz at BaseTone
	OctaveRatio   = 2.0
)

// Pitch is a tone with a fine tuning adjustment and the frequency they
// denote. Cent adjustments bend the exponent, so they keep their musical
// size in every octave; herz adjustments are added to the tempered
// frequency as a flat offset.
type Pitch struct {
	tone       Tone
	adjustment Adjustment
	frequency  float64
}

// NewPitch computes the frequency up front. Adjustments in units other than
// cent and herz fail with ErrUnsupportedAdjustment.
func NewPitch(tone Tone, adjustment Adjustment) (Pitch, error) {
	freq, err := frequencyOf(tone, adjustment)
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{tone: tone, adjustment: adjustment, frequency: freq}, nil
}

// MustPitch is NewPitch for known-good arguments. It panics on error.
func MustPitch(tone Tone, adjustment Adjustment) Pitch {
	p, err := NewPitch(tone, adjustment)
	if err != nil {
		panic(err)
	}
	return p
}

// TemperedFrequency is the 12-TET frequency of a tone relative to A4 = 440.
func TemperedFrequency(tone Tone) float64 {
	return octaveWalk(float64(tone.Distance(BaseTone)), SemitonesInOctave)
}

// octaveWalk covers steps (sign is direction) of an octave divided into
// stepsInOctave parts, starting from the base frequency.
func octaveWalk(steps, stepsInOctave float64) float64 {
	return BaseFrequency * math.Pow(OctaveRatio, steps/stepsInOctave)
}

func frequencyOf(tone Tone, adjustment Adjustment) (float64, error) {
	semitones := tone.Distance(BaseTone)

	switch {
	case adjustment.Unit() == UnitCent:
		cents := float64(semitones*CentsInSemitone) + adjustment.Value()
		return octaveWalk(cents, CentsInOctave), nil
	case adjustment.Unit() == UnitHerz || adjustment.IsZero():
		return octaveWalk(float64(semitones), SemitonesInOctave) + adjustment.Value(), nil
	}

	return 0, fmt.Errorf("pitch %s with unit %q: %w", tone.Code(true), adjustment.Unit(), ErrUnsupportedAdjustment)
}

func (p Pitch) Tone() Tone             { return p.tone }
func (p Pitch) Adjustment() Adjustment { return p.adjustment }
func (p Pitch) Frequency() float64     { return p.frequency }

// Adjust adds to the pitch's adjustment. A zero adjustment is a no-op.
func (p Pitch) Adjust(adjustment Adjustment) (Pitch, error) {
	if adjustment.IsZero() {
		return p, nil
	}
	sum, err := p.adjustment.Add(adjustment)
	if err != nil {
		return Pitch{}, fmt.Errorf("adjust pitch %s: %w", p.Code(true), err)
	}
	return NewPitch(p.tone, sum)
}

func (p Pitch) Unadjusted() Pitch {
	if p.adjustment.IsZero() {
		return p
	}
	return MustPitch(p.tone, ZeroAdjustment)
}

// Transpose moves the tone by the unadjusted interval and carries the
// interval's cent adjustment, signed by direction, into the pitch.
func (p Pitch) Transpose(interval Interval, direction Direction) (Pitch, error) {
	adjustment, err := p.adjustment.Add(interval.Adjustment().Scale(direction))
	if err != nil {
		return Pitch{}, fmt.Errorf("transpose pitch %s: %w", p.Code(true), err)
	}
	tone, err := p.tone.Transpose(interval.Unadjusted(), direction)
	if err != nil {
		return Pitch{}, err
	}
	return NewPitch(tone, adjustment)
}

// Code renders the tone code followed by the adjustment code. Concise mode
// drops a zero adjustment, e.g. "G#3&herz+20" or "A4".
func (p Pitch) Code(concise bool) string {
	code := p.tone.Code(concise)
	if !p.adjustment.IsZero() || !concise {
		code += p.adjustment.Code()
	}
	return code
}

func (p Pitch) String() string {
	return p.Code(true)
}

// ParsePitch would read a pitch code back. Decoding is not supported.
func ParsePitch(code string) (Pitch, error) {
	return Pitch{}, fmt.Errorf("parse pitch %q: %w", code, ErrNotImplemented)
}
