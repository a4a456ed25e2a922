package music

import (
	"fmt"
	"strconv"
)

// Pitch space constants
const (
	SemitonesInOctave = 12
	CentsInSemitone   = 100
	CentsInOctave     = CentsInSemitone * SemitonesInOctave
)

// Origin is the semitone size of a simple diatonic interval before
// augmentation and octaves. Six semitones is not an origin.
type Origin int

const (
	OriginPerfectUnison Origin = 0
	OriginMinorSecond   Origin = 1
	OriginMajorSecond   Origin = 2
	OriginMinorThird    Origin = 3
	OriginMajorThird    Origin = 4
	OriginPerfectFourth Origin = 5
	OriginPerfectFifth  Origin = 7
	OriginMinorSixth    Origin = 8
	OriginMajorSixth    Origin = 9
	OriginMinorSeventh  Origin = 10
	OriginMajorSeventh  Origin = 11
)

// Quality of a simple interval.
type Quality int

const (
	Perfect Quality = iota
	Major
	Minor
)

func (q Quality) String() string {
	switch q {
	case Perfect:
		return "Perfect"
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	}
	return "Quality(" + strconv.Itoa(int(q)) + ")"
}

// Abbrev is the short quality marker used in interval codes.
func (q Quality) Abbrev() string {
	switch q {
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Minor:
		return "m"
	}
	return "?"
}

// Kind names an interval by the number of letters it spans.
type Kind int

const (
	Unison Kind = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
)

var kindNames = [LettersInOctave]string{"Unison", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh"}

func (k Kind) String() string {
	if k < Unison || k > Seventh {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

type originInfo struct {
	valid   bool
	quality Quality
	steps   int
}

var origins = [SemitonesInOctave]originInfo{
	OriginPerfectUnison: {true, Perfect, 0},
	OriginMinorSecond:   {true, Minor, 1},
	OriginMajorSecond:   {true, Major, 1},
	OriginMinorThird:    {true, Minor, 2},
	OriginMajorThird:    {true, Major, 2},
	OriginPerfectFourth: {true, Perfect, 3},
	OriginPerfectFifth:  {true, Perfect, 4},
	OriginMinorSixth:    {true, Minor, 5},
	OriginMajorSixth:    {true, Major, 5},
	OriginMinorSeventh:  {true, Minor, 6},
	OriginMajorSeventh:  {true, Major, 6},
}

func (o Origin) Valid() bool {
	return o >= 0 && int(o) < len(origins) && origins[o].valid
}

// Interval is a diatonic interval: an origin shifted by augmentation
// semitones and whole octaves, with an optional cent adjustment.
type Interval struct {
	origin       Origin
	augmentation int
	octaves      int
	adjustment   Adjustment
}

// NewInterval validates the origin and requires any non-zero adjustment to
// be in cents.
func NewInterval(origin Origin, augmentation, octaves int, adjustment Adjustment) (Interval, error) {
	if !origin.Valid() {
		return Interval{}, fmt.Errorf("interval origin %d: %w", origin, ErrInvalidArgument)
	}
	if !adjustment.IsZero() && adjustment.Unit() != UnitCent {
		return Interval{}, fmt.Errorf("interval adjustment %s: %w", adjustment.Code(), ErrUnsupportedAdjustment)
	}
	return Interval{
		origin:       origin,
		augmentation: augmentation,
		octaves:      octaves,
		adjustment:   adjustment,
	}, nil
}

// MustInterval is NewInterval for known-good arguments. It panics on error.
func MustInterval(origin Origin, augmentation, octaves int, adjustment Adjustment) Interval {
	i, err := NewInterval(origin, augmentation, octaves, adjustment)
	if err != nil {
		panic(err)
	}
	return i
}

func simple(origin Origin) Interval {
	return MustInterval(origin, 0, 0, ZeroAdjustment)
}

// Common intervals
var (
	PerfectUnison = simple(OriginPerfectUnison)
	MinorSecond   = simple(OriginMinorSecond)
	MajorSecond   = simple(OriginMajorSecond)
	MinorThird    = simple(OriginMinorThird)
	MajorThird    = simple(OriginMajorThird)
	PerfectFourth = simple(OriginPerfectFourth)
	PerfectFifth  = simple(OriginPerfectFifth)
	MinorSixth    = simple(OriginMinorSixth)
	MajorSixth    = simple(OriginMajorSixth)
	MinorSeventh  = simple(OriginMinorSeventh)
	MajorSeventh  = simple(OriginMajorSeventh)
	Octave        = MustInterval(OriginPerfectUnison, 0, 1, ZeroAdjustment)

	Semitone  = MinorSecond
	WholeTone = MajorSecond

	QuarterToneUp   = MustInterval(OriginPerfectUnison, 0, 0, Cents(50))
	QuarterToneDown = MustInterval(OriginPerfectUnison, 0, 0, Cents(-50))
)

func (i Interval) Origin() Origin         { return i.origin }
func (i Interval) Augmentation() int      { return i.augmentation }
func (i Interval) Octaves() int           { return i.octaves }
func (i Interval) Adjustment() Adjustment { return i.adjustment }
func (i Interval) Quality() Quality       { return origins[i.origin].quality }

// Steps is the number of letters the interval moves, ignoring octaves.
func (i Interval) Steps() int {
	return origins[i.origin].steps
}

func (i Interval) Kind() Kind {
	return Kind(i.Steps())
}

// Semitones is the total size without the adjustment.
func (i Interval) Semitones() int {
	return int(i.origin) + i.augmentation + i.octaves*SemitonesInOctave
}

// Cents is the total size including the adjustment.
func (i Interval) Cents() float64 {
	return float64(i.Semitones()*CentsInSemitone) + i.adjustment.Value()
}

func (i Interval) IsAdjusted() bool {
	return !i.adjustment.IsZero()
}

// Adjust adds a cent adjustment. A zero adjustment returns i unchanged.
func (i Interval) Adjust(adjustment Adjustment) (Interval, error) {
	if adjustment.IsZero() {
		return i, nil
	}
	sum, err := i.adjustment.Add(adjustment)
	if err != nil {
		return Interval{}, fmt.Errorf("adjust interval %s: %w", i.Code(true), err)
	}
	return NewInterval(i.origin, i.augmentation, i.octaves, sum)
}

func (i Interval) Unadjusted() Interval {
	if i.adjustment.IsZero() {
		return i
	}
	i.adjustment = ZeroAdjustment
	return i
}

// Add is reserved; combining two intervals has no defined spelling yet.
func (i Interval) Add(other Interval) (Interval, error) {
	return Interval{}, fmt.Errorf("add interval %s to %s: %w", other.Code(true), i.Code(true), ErrNotImplemented)
}

// Code renders quality, interval number, augmentation and adjustment,
// e.g. "M3", "P12", "m2+1", "P1&cent+50".
func (i Interval) Code(concise bool) string {
	code := i.Quality().Abbrev() + strconv.Itoa(i.Steps()+1+i.octaves*LettersInOctave)

	if i.augmentation > 0 {
		code += "+" + strconv.Itoa(i.augmentation)
	} else if i.augmentation < 0 {
		code += strconv.Itoa(i.augmentation)
	}

	if !i.adjustment.IsZero() || !concise {
		code += i.adjustment.Code()
	}

	return code
}

func (i Interval) String() string {
	return i.Code(true)
}
