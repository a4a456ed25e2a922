package music

import (
	"errors"
	"testing"
)

func TestToneCode(t *testing.T) {
	tests := []struct {
		tone    Tone
		concise bool
		want    string
	}{
		{MustTone(C, Natural, 4), true, "C4"},
		{MustTone(C, Natural, 4), false, "Cn4"},
		{MustTone(G, Sharp, 3), true, "G#3"},
		{MustTone(F, DoubleSharp, 5), true, "Fx5"},
		{MustTone(B, DoubleFlat, 2), true, "Bbb2"},
		{MustTone(E, 3, 4), true, "Ex#4"},
		{MustTone(A, Natural, -1), true, "A-1"},
	}
	for _, tt := range tests {
		if got := tt.tone.Code(tt.concise); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.concise, got, tt.want)
		}
	}
}

func TestToneValue(t *testing.T) {
	if got := MustTone(C, Natural, 0).Value(); got != 0 {
		t.Errorf("C0 value = %d", got)
	}
	if got := BaseTone.Value(); got != 57 {
		t.Errorf("A4 value = %d, want 57", got)
	}
	if MustTone(B, Sharp, 3).Value() != MustTone(C, Natural, 4).Value() {
		t.Error("B#3 and C4 should share a value")
	}
	if _, err := NewTone(Letter(9), Natural, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("invalid letter: got %v", err)
	}
}

func TestToneTranspose(t *testing.T) {
	tests := []struct {
		name      string
		from      Tone
		interval  Interval
		direction Direction
		want      string
	}{
		{"C up major second", MustTone(C, Natural, 4), MajorSecond, Up, "D4"},
		{"C down minor second", MustTone(C, Natural, 4), MinorSecond, Down, "B3"},
		{"B up minor second", MustTone(B, Natural, 3), MinorSecond, Up, "C4"},
		{"E up major third", MustTone(E, Natural, 4), MajorThird, Up, "G#4"},
		{"G# up major third", MustTone(G, Sharp, 4), MajorThird, Up, "B#4"},
		{"D# up major third", MustTone(D, Sharp, 4), MajorThird, Up, "Fx4"},
		{"F down major third", MustTone(F, Natural, 4), MajorThird, Down, "Db4"},
		{"Cb down major third", MustTone(C, Flat, 4), MajorThird, Down, "Abb3"},
		{"A down perfect fifth", MustTone(A, Natural, 4), PerfectFifth, Down, "D4"},
		{"C up octave", MustTone(C, Natural, 4), Octave, Up, "C5"},
		{"C down octave", MustTone(C, Natural, 4), Octave, Down, "C3"},
		{"C up major tenth", MustTone(C, Natural, 4), MustInterval(OriginMajorThird, 0, 1, ZeroAdjustment), Up, "E5"},
		{"E down major tenth", MustTone(E, Natural, 5), MustInterval(OriginMajorThird, 0, 1, ZeroAdjustment), Down, "C4"},
		{"C up augmented fourth", MustTone(C, Natural, 4), MustInterval(OriginPerfectFourth, 1, 0, ZeroAdjustment), Up, "F#4"},
		{"C up diminished fifth", MustTone(C, Natural, 4), MustInterval(OriginPerfectFifth, -1, 0, ZeroAdjustment), Up, "Gb4"},
		{"unison keeps spelling", MustTone(E, Sharp, 2), PerfectUnison, Down, "E#2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Transpose(tt.interval, tt.direction)
			if err != nil {
				t.Fatalf("transpose: %v", err)
			}
			if got.Code(true) != tt.want {
				t.Errorf("got %s, want %s", got.Code(true), tt.want)
			}
			wantValue := tt.from.Value() + tt.interval.Semitones()*int(tt.direction)
			if got.Value() != wantValue {
				t.Errorf("value = %d, want %d", got.Value(), wantValue)
			}
		})
	}
}

func TestToneTransposeRoundTrip(t *testing.T) {
	origins := []Origin{
		OriginPerfectUnison, OriginMinorSecond, OriginMajorSecond, OriginMinorThird,
		OriginMajorThird, OriginPerfectFourth, OriginPerfectFifth, OriginMinorSixth,
		OriginMajorSixth, OriginMinorSeventh, OriginMajorSeventh,
	}
	for l := C; l <= B; l++ {
		for alt := DoubleFlat; alt <= DoubleSharp; alt++ {
			tone := MustTone(l, alt, 4)
			for _, o := range origins {
				for aug := -1; aug <= 1; aug++ {
					for oct := 0; oct <= 1; oct++ {
						i := MustInterval(o, aug, oct, ZeroAdjustment)
						up, err := tone.Transpose(i, Up)
						if err != nil {
							t.Fatalf("up: %v", err)
						}
						back, err := up.Transpose(i, Down)
						if err != nil {
							t.Fatalf("down: %v", err)
						}
						if back != tone {
							t.Errorf("%s up and down %s = %s", tone, i, back)
						}
					}
				}
			}
		}
	}
}

func TestToneTransposeRejectsAdjustedInterval(t *testing.T) {
	_, err := BaseTone.Transpose(QuarterToneUp, Up)
	if !errors.Is(err, ErrUnsupportedAdjustment) {
		t.Errorf("got %v, want ErrUnsupportedAdjustment", err)
	}
}

func TestToneAlter(t *testing.T) {
	c4 := MustTone(C, Natural, 4)
	if c4.Alter(0) != c4 {
		t.Error("Alter(0) should be a no-op")
	}
	cs := c4.Alter(Sharp)
	if cs.Code(true) != "C#4" || cs.Value() != c4.Value()+1 {
		t.Errorf("Alter(Sharp) = %s (%d)", cs, cs.Value())
	}
	if got := cs.Alter(Sharp).Alter(Sharp); got.Code(true) != "Cx#4" {
		t.Errorf("triple sharp = %s", got)
	}
	if cs.Unaltered() != c4 {
		t.Errorf("Unaltered() = %s", cs.Unaltered())
	}
}

func TestParseToneNotImplemented(t *testing.T) {
	if _, err := ParseTone("C4"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("got %v", err)
	}
}
