package midi

import (
	"errors"
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-tonal/music"
)

// ErrKeyOutOfRange is returned for tones outside MIDI keys 0..127.
var ErrKeyOutOfRange = errors.New("tone outside MIDI key range")

// keyOffset maps tone values (C0 = 0) to MIDI keys (C4 = 60).
const keyOffset = 12

// MaxKey is the highest MIDI key.
const MaxKey = 127

// Key returns the MIDI key sounding the tone. Enharmonic spellings share a key.
func Key(tone music.Tone) (gomidi.Note, error) {
	k := tone.Value() + keyOffset
	if k < 0 || k > MaxKey {
		return 0, fmt.Errorf("key for %s (%d): %w", tone.Code(true), k, ErrKeyOutOfRange)
	}
	return gomidi.Note(k), nil
}

var sharpSpelling = [music.SemitonesInOctave]struct {
	letter     music.Letter
	alteration music.Alteration
}{
	{music.C, music.Natural},
	{music.C, music.Sharp},
	{music.D, music.Natural},
	{music.D, music.Sharp},
	{music.E, music.Natural},
	{music.F, music.Natural},
	{music.F, music.Sharp},
	{music.G, music.Natural},
	{music.G, music.Sharp},
	{music.A, music.Natural},
	{music.A, music.Sharp},
	{music.B, music.Natural},
}

// ToneFromKey spells a MIDI key with naturals and sharps.
func ToneFromKey(key gomidi.Note) music.Tone {
	v := int(key.Value()) - keyOffset
	octave := v / music.SemitonesInOctave
	pc := v % music.SemitonesInOctave
	if pc < 0 {
		pc += music.SemitonesInOctave
		octave--
	}
	s := sharpSpelling[pc]
	return music.MustTone(s.letter, s.alteration, octave)
}
