package compose

import (
	"fmt"
	"strings"

	"go-tonal/music"
)

// Key is the mode of a tonality.
type Key string

const (
	Major Key = "major"
	Minor Key = "minor"
)

var (
	whole = music.WholeTone
	half  = music.Semitone
)

// Scale steps from the tonic up to its octave
var scaleMatrix = map[Key][]music.Interval{
	Major: {whole, whole, half, whole, whole, whole, half},
	Minor: {whole, half, whole, whole, half, whole, whole},
}

// Keys lists the supported keys in display order.
var Keys = []Key{Major, Minor}

func (k Key) Valid() bool {
	_, ok := scaleMatrix[k]
	return ok
}

// Tonality is the ordered tones of a key, tonic through octave.
type Tonality struct {
	base  music.Tone
	key   Key
	tones []music.Tone
}

// NewTonality spells the scale by walking the key's steps from base, so each
// letter appears exactly once below the octave.
func NewTonality(base music.Tone, key Key) (Tonality, error) {
	steps, ok := scaleMatrix[key]
	if !ok {
		return Tonality{}, fmt.Errorf("tonality key %q: %w", key, music.ErrInvalidArgument)
	}

	tones := make([]music.Tone, 0, len(steps)+1)
	tones = append(tones, base)
	for _, interval := range steps {
		next, err := tones[len(tones)-1].Transpose(interval, music.Up)
		if err != nil {
			return Tonality{}, err
		}
		tones = append(tones, next)
	}

	return Tonality{base: base, key: key, tones: tones}, nil
}

func (t Tonality) Base() music.Tone { return t.base }
func (t Tonality) Key() Key         { return t.key }
func (t Tonality) Len() int         { return len(t.tones) }

func (t Tonality) Has(i int) bool {
	return i >= 0 && i < len(t.tones)
}

func (t Tonality) Tone(i int) (music.Tone, error) {
	if !t.Has(i) {
		return music.Tone{}, fmt.Errorf("tonality tone %d of %d: %w", i, len(t.tones), music.ErrItemNotFound)
	}
	return t.tones[i], nil
}

// Tones returns a copy, tonic first.
func (t Tonality) Tones() []music.Tone {
	out := make([]music.Tone, len(t.tones))
	copy(out, t.tones)
	return out
}

// Resolve spells a scale degree: the tonality's tone for the degree, altered
// and moved by the step's relative octave.
func (t Tonality) Resolve(step Step) (music.Tone, error) {
	tone, err := t.Tone(int(step.Degree))
	if err != nil {
		return music.Tone{}, err
	}
	tone = tone.Alter(step.Alteration)

	if step.Octave == 0 {
		return tone, nil
	}
	direction := music.Up
	octaves := step.Octave
	if octaves < 0 {
		direction, octaves = music.Down, -octaves
	}
	shift, err := music.NewInterval(music.OriginPerfectUnison, 0, octaves, music.ZeroAdjustment)
	if err != nil {
		return music.Tone{}, err
	}
	return tone.Transpose(shift, direction)
}

// Code renders the tones separated by spaces, e.g. "C4 D4 E4 F4 G4 A4 B4 C5".
func (t Tonality) Code(concise bool) string {
	codes := make([]string, len(t.tones))
	for i, tone := range t.tones {
		codes[i] = tone.Code(concise)
	}
	return strings.Join(codes, " ")
}

func (t Tonality) String() string {
	return t.Code(true)
}
