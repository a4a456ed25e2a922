package music

// Direction of a transposition.
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Adjustable values carry a fine tuning offset.
type Adjustable[T any] interface {
	Adjust(Adjustment) (T, error)
	Unadjusted() T
}

// Transposable values move by an interval.
type Transposable[T any] interface {
	Transpose(Interval, Direction) (T, error)
}

// Alterable values carry an accidental.
type Alterable[T any] interface {
	Alter(Alteration) T
	Unaltered() T
}

// Encodable values render to a short code.
type Encodable interface {
	Code(concise bool) string
}

var (
	_ Adjustable[Interval] = Interval{}
	_ Adjustable[Pitch]    = Pitch{}
	_ Transposable[Tone]   = Tone{}
	_ Transposable[Pitch]  = Pitch{}
	_ Alterable[Tone]      = Tone{}
	_ Encodable            = Tone{}
	_ Encodable            = Pitch{}
	_ Encodable            = Interval{}
	_ Encodable            = Alteration(0)
)
