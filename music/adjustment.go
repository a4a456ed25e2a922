package music

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is the measurement unit of an Adjustment.
type Unit string

const (
	UnitNone Unit = ""
	UnitCent Unit = "cent"
	UnitHerz Unit = "herz"
)

// DefaultUnit is rendered for zero adjustments that carry no unit.
const DefaultUnit = UnitCent

// AdjustmentCodePrefix starts every adjustment code.
const AdjustmentCodePrefix = "&"

// Adjustment is a fine tuning offset. The zero value is the zero adjustment;
// any non-zero value always carries a unit.
type Adjustment struct {
	value float64
	unit  Unit
}

// ZeroAdjustment is the identity for Add.
var ZeroAdjustment = Adjustment{}

// NewAdjustment builds an adjustment. A zero value may omit the unit.
// Unknown units are accepted here and rejected by whatever consumes them.
func NewAdjustment(value float64, unit Unit) (Adjustment, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Adjustment{}, fmt.Errorf("adjustment value %v: %w", value, ErrInvalidArgument)
	}
	if value != 0 && unit == UnitNone {
		return Adjustment{}, fmt.Errorf("adjustment value %v: %w", value, ErrUnitUnspecified)
	}
	return Adjustment{value: value, unit: unit}, nil
}

// Cents returns an adjustment of v cents.
func Cents(v float64) Adjustment {
	return Adjustment{value: v, unit: UnitCent}
}

// Herz returns an adjustment of v Hz.
func Herz(v float64) Adjustment {
	return Adjustment{value: v, unit: UnitHerz}
}

func (a Adjustment) Value() float64 { return a.value }
func (a Adjustment) Unit() Unit      { return a.unit }
func (a Adjustment) IsZero() bool    { return a.value == 0 }

// Add sums two adjustments. A zero operand returns the other one untouched,
// unit included; two non-zero operands must share a unit.
func (a Adjustment) Add(other Adjustment) (Adjustment, error) {
	if other.IsZero() {
		return a, nil
	}
	if a.IsZero() {
		return other, nil
	}
	if a.unit != other.unit {
		return Adjustment{}, fmt.Errorf("add %q to %q: %w", other.unit, a.unit, ErrUnitMismatch)
	}
	return Adjustment{value: a.value + other.value, unit: a.unit}, nil
}

// Scale flips the sign of the adjustment for Down.
func (a Adjustment) Scale(direction Direction) Adjustment {
	if a.IsZero() || direction == Up {
		return a
	}
	return Adjustment{value: -a.value, unit: a.unit}
}

// Code renders "&<unit><sign><value>", e.g. "&cent+50" or "&herz-2.5".
func (a Adjustment) Code() string {
	unit := a.unit
	if unit == UnitNone {
		unit = DefaultUnit
	}

	sign := ""
	if a.value >= 0 {
		sign = "+"
	}

	return AdjustmentCodePrefix + string(unit) + sign + strconv.FormatFloat(a.value, 'f', -1, 64)
}

func (a Adjustment) String() string {
	return a.Code()
}
