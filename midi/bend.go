package midi

import (
	"math"

	"go-tonal/music"
)

// Pitch bend limits
const (
	BendMin = -8192
	BendMax = 8191
)

// Detune is how far the pitch sounds from its tone's tempered frequency,
// in cents. It works for both cent and herz adjustments.
func Detune(p music.Pitch) float64 {
	if p.Adjustment().IsZero() {
		return 0
	}
	return music.CentsInOctave * math.Log2(p.Frequency()/music.TemperedFrequency(p.Tone()))
}

// Bend converts the pitch's detune into a 14-bit bend value for a synth
// whose full bend covers rangeSemitones. Results are clamped.
func Bend(p music.Pitch, rangeSemitones float64) int16 {
	cents := Detune(p)
	if cents == 0 || rangeSemitones <= 0 {
		return 0
	}
	v := math.Round(cents / (rangeSemitones * music.CentsInSemitone) * -BendMin)
	switch {
	case v < BendMin:
		return BendMin
	case v > BendMax:
		return BendMax
	}
	return int16(v)
}
