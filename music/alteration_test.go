package music

import "testing"

func TestAlterationCode(t *testing.T) {
	tests := []struct {
		alt     Alteration
		concise bool
		want    string
	}{
		{Natural, true, ""},
		{Natural, false, "n"},
		{Sharp, true, "#"},
		{DoubleSharp, true, "x"},
		{3, true, "x#"},
		{4, true, "xx"},
		{5, false, "xx#"},
		{Flat, true, "b"},
		{DoubleFlat, true, "bb"},
		{-3, true, "bbb"},
		{-4, false, "bbbb"},
	}
	for _, tt := range tests {
		if got := tt.alt.Code(tt.concise); got != tt.want {
			t.Errorf("Alteration(%d).Code(%v) = %q, want %q", tt.alt, tt.concise, got, tt.want)
		}
	}
}

func TestAlterationName(t *testing.T) {
	if got := DoubleSharp.Name(); got != "doubleSharp" {
		t.Errorf("DoubleSharp.Name() = %q", got)
	}
	if got := Alteration(7).Name(); got != "" {
		t.Errorf("Alteration(7).Name() = %q, want empty", got)
	}
}

func TestLetterSemitonesFromC(t *testing.T) {
	want := []int{0, 2, 4, 5, 7, 9, 11}
	for l := C; l <= B; l++ {
		if got := l.SemitonesFromC(); got != want[l] {
			t.Errorf("%s.SemitonesFromC() = %d, want %d", l, got, want[l])
		}
	}
	if Letter(7).Valid() || Letter(-1).Valid() {
		t.Error("letters outside C..B should be invalid")
	}
}

func TestFloorDivAndMod(t *testing.T) {
	tests := []struct{ n, div, mod int }{
		{0, 0, 0},
		{6, 0, 6},
		{7, 1, 0},
		{-1, -1, 6},
		{-7, -1, 0},
		{-8, -2, 6},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.n, LettersInOctave); got != tt.div {
			t.Errorf("floorDiv(%d, 7) = %d, want %d", tt.n, got, tt.div)
		}
		if got := mod(tt.n, LettersInOctave); got != tt.mod {
			t.Errorf("mod(%d, 7) = %d, want %d", tt.n, got, tt.mod)
		}
	}
}
