package compose

import (
	"errors"
	"testing"

	"go-tonal/music"
)

func pitch(l music.Letter, alt music.Alteration, octave int) music.Pitch {
	return music.MustPitch(music.MustTone(l, alt, octave), music.ZeroAdjustment)
}

func TestConcordSortsByFrequency(t *testing.T) {
	c := NewConcord(Quarter,
		pitch(music.G, music.Natural, 4),
		pitch(music.C, music.Natural, 4),
		pitch(music.E, music.Natural, 4),
	)
	if got := c.Code(DefaultCodeOptions); got != "[ C4 E4 G4 ]" {
		t.Errorf("Code() = %q", got)
	}
	if got := c.Code(CodeOptions{Concise: false}); got != "[Cn4&cent+0 En4&cent+0 Gn4&cent+0]" {
		t.Errorf("verbose Code() = %q", got)
	}

	pitches := c.Pitches()
	for i := 1; i < len(pitches); i++ {
		if pitches[i-1].Frequency() > pitches[i].Frequency() {
			t.Errorf("pitch %d out of order", i)
		}
	}
}

func TestConcordAdjustedPitchOrder(t *testing.T) {
	e4 := music.MustTone(music.E, music.Natural, 4)
	sharpE := music.MustPitch(e4, music.Herz(30))
	f4 := pitch(music.F, music.Natural, 4)

	c := NewConcord(Half, sharpE, f4)
	low, _ := c.Pitch(0)
	if low != f4 {
		t.Errorf("lowest pitch = %s, want F4 (E4 + 30 Hz is higher)", low)
	}
}

func TestConcordItems(t *testing.T) {
	c := NewConcord(Quarter, pitch(music.C, music.Natural, 4))
	if c.Len() != 1 || !c.Has(0) || c.Has(1) {
		t.Fatalf("Len/Has wrong: %d", c.Len())
	}
	if _, err := c.Pitch(1); !errors.Is(err, music.ErrItemNotFound) {
		t.Errorf("Pitch(1): got %v, want ErrItemNotFound", err)
	}
	if c.Duration() != Quarter {
		t.Errorf("Duration() = %s", c.Duration())
	}
	notes := c.Notes()
	if len(notes) != 1 || notes[0].Duration != Quarter {
		t.Errorf("Notes() = %v", notes)
	}
}

func TestConcordTranspose(t *testing.T) {
	c := ConcordOf(Whole,
		NewNote(pitch(music.C, music.Natural, 4), Eighth),
		NewNote(pitch(music.E, music.Natural, 4), Eighth),
		NewNote(pitch(music.G, music.Natural, 4), Eighth),
	)
	up, err := c.Transpose(music.MajorSecond, music.Up)
	if err != nil {
		t.Fatalf("transpose: %v", err)
	}
	if got := up.String(); got != "[ D4 F#4 A4 ]" {
		t.Errorf("transposed = %q", got)
	}
	if up.Duration() != Whole {
		t.Errorf("duration = %s", up.Duration())
	}
}

func TestNoteForwardsToPitch(t *testing.T) {
	n := NewNote(pitch(music.C, music.Sharp, 4), Eighth)
	if got := n.Code(true); got != "C#4:1/8" {
		t.Errorf("Code() = %q", got)
	}

	up, err := n.Transpose(music.MinorThird, music.Up)
	if err != nil {
		t.Fatalf("transpose: %v", err)
	}
	if up.String() != "E4:1/8" {
		t.Errorf("transposed = %s", up)
	}

	adj, err := up.Adjust(music.Cents(-10))
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if adj.String() != "E4&cent-10:1/8" {
		t.Errorf("adjusted = %s", adj)
	}
	if adj.Unadjusted() != up {
		t.Errorf("Unadjusted() = %s", adj.Unadjusted())
	}
}

func TestDuration(t *testing.T) {
	d, err := NewDuration(2, 8)
	if err != nil || d != Quarter {
		t.Errorf("NewDuration(2, 8) = %s, %v", d, err)
	}
	if got := Quarter.Dotted(); got != (Duration{3, 8}) {
		t.Errorf("dotted quarter = %s", got)
	}
	if got := Half.Dotted().Beats(); got != 3 {
		t.Errorf("dotted half beats = %v", got)
	}
	if _, err := NewDuration(1, 0); !errors.Is(err, music.ErrInvalidArgument) {
		t.Errorf("NewDuration(1, 0): got %v", err)
	}
}
