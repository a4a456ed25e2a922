package compose

import (
	"fmt"
	"strconv"

	"go-tonal/music"
)

// Duration is a note value as a fraction of a whole note.
type Duration struct {
	Numerator   int
	Denominator int
}

// Common note values
var (
	Whole     = Duration{1, 1}
	Half      = Duration{1, 2}
	Quarter   = Duration{1, 4}
	Eighth    = Duration{1, 8}
	Sixteenth = Duration{1, 16}
)

// NewDuration builds a duration of num/den whole notes; both must be positive.
func NewDuration(num, den int) (Duration, error) {
	if num <= 0 || den <= 0 {
		return Duration{}, fmt.Errorf("duration %d/%d: %w", num, den, music.ErrInvalidArgument)
	}
	return Duration{num, den}.reduced(), nil
}

func (d Duration) reduced() Duration {
	g := gcd(d.Numerator, d.Denominator)
	return Duration{d.Numerator / g, d.Denominator / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Dotted lengthens the value by half.
func (d Duration) Dotted() Duration {
	return Duration{d.Numerator * 3, d.Denominator * 2}.reduced()
}

// Beats counts quarter notes.
func (d Duration) Beats() float64 {
	return 4 * float64(d.Numerator) / float64(d.Denominator)
}

func (d Duration) Code() string {
	return strconv.Itoa(d.Numerator) + "/" + strconv.Itoa(d.Denominator)
}

func (d Duration) String() string {
	return d.Code()
}
