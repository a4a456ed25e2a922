package music

// Letter is a diatonic note name, stored as its scale degree from C.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// LettersInOctave is the number of diatonic letters before they repeat.
const LettersInOctave = 7

func (l Letter) Valid() bool {
	return l >= C && l <= B
}

// Code returns the single-letter name ("C".."B"), or "?" for invalid letters.
func (l Letter) Code() string {
	switch l {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	}
	return "?"
}

func (l Letter) String() string {
	return l.Code()
}

// SemitonesFromC returns the natural letter's distance above C.
func (l Letter) SemitonesFromC() int {
	switch l {
	case C:
		return int(OriginPerfectUnison)
	case D:
		return int(OriginMajorSecond)
	case E:
		return int(OriginMajorThird)
	case F:
		return int(OriginPerfectFourth)
	case G:
		return int(OriginPerfectFifth)
	case A:
		return int(OriginMajorSixth)
	case B:
		return int(OriginMajorSeventh)
	}
	return 0
}

// letterAt wraps any letter offset into C..B.
func letterAt(n int) Letter {
	return Letter(mod(n, LettersInOctave))
}

func mod(n, m int) int {
	return ((n % m) + m) % m
}

func floorDiv(n, m int) int {
	q := n / m
	if (n%m != 0) && ((n < 0) != (m < 0)) {
		q--
	}
	return q
}
