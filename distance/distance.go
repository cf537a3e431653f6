package distance

import (
	"math"

	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/displayunit/unit"
)

// Distance is a value in a display unit. The zero value is 0px.
type Distance struct {
	value float64
	unit  *unit.Unit
}

// New creates a distance. A nil unit is taken as unit.Pixel.
func New(value float64, u *unit.Unit) Distance {
	if u == nil {
		u = unit.Pixel
	}
	return Distance{value: value, unit: u}
}

// Value returns the numeric value of d, in d's unit.
func (d Distance) Value() float64 {
	return d.value
}

// Unit returns the unit of d.
func (d Distance) Unit() *unit.Unit {
	if d.unit == nil {
		return unit.Pixel
	}
	return d.unit
}

// Convert returns d converted to unit u. If d already is in unit u, d itself is
// returned. Conversions from or to reference dependent units will fail with
// an error of kind unit.ErrMissingReference; use ConvertRef for these.
func (d Distance) Convert(u *unit.Unit) (Distance, error) {
	return d.ConvertRef(u, unit.NoReference)
}

// ConvertRef returns d converted to unit u, resolving reference dependent units
// against reference length ref (in pixels).
func (d Distance) ConvertRef(u *unit.Unit, ref float64) (Distance, error) {
	if d.Unit() == u {
		return d, nil
	}
	v, err := unit.Convert(d.value, d.Unit(), u, ref)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, unit: u}, nil
}

// Pixels returns d in pixels. ref is the reference length for reference
// dependent units, or unit.NoReference.
func (d Distance) Pixels(ref float64) (float64, error) {
	return unit.Convert(d.value, d.Unit(), unit.Pixel, ref)
}

// String formats d as value and canonical unit name, e.g. "12.5mm".
func (d Distance) String() string {
	return d.Unit().Format(d.value)
}

// pixels returns d and other in pixels, using a single read of the
// process-wide environment. ok is false if a reference length would be needed,
// i.e. if the units differ and one of them is reference dependent.
func (d Distance) pixels(other Distance) (dpx, opx float64, ok bool) {
	du, ou := d.Unit(), other.Unit()
	if du != ou && (du.IsReferenceDependent() || ou.IsReferenceDependent()) {
		return 0, 0, false
	}
	e := env.Get()
	return d.value * du.FactorIn(e), other.value * ou.FactorIn(e), true
}

// Equals is true if d and other denote the same length in pixels. Comparisons
// are done without reference length, therefore a reference dependent distance
// equals only distances of the same unit. Equals is symmetric and agrees with
// Hash: distances which are equal have the same hash value.
func (d Distance) Equals(other Distance) bool {
	dpx, opx, ok := d.pixels(other)
	return ok && dpx == opx
}

// Hash returns a hash value derived from d in pixels, where reference
// dependent distances are taken relative to a reference length of 1px.
func (d Distance) Hash() uint64 {
	px := d.value * d.Unit().Factor()
	if px == 0 {
		px = 0 // -0 and +0 are equal
	} else if math.IsNaN(px) {
		px = math.NaN()
	}
	return math.Float64bits(px)
}

// Compare orders d and other, returning -1, 0 or +1. Both are compared by
// their length in pixels. NaN is greater than any other value and equal to
// NaN. -0 is less than +0.
//
// If one of them is reference dependent and the units differ, no length
// comparison is possible. Then distances in absolute units order before
// reference dependent ones, the latter ordered by unit code and then by value.
// This order is total and transitive, but unrelated to physical length.
func (d Distance) Compare(other Distance) int {
	dpx, opx, ok := d.pixels(other)
	if ok {
		return compareFloats(dpx, opx)
	}
	du, ou := d.Unit(), other.Unit()
	if du.IsReferenceDependent() != ou.IsReferenceDependent() {
		if ou.IsReferenceDependent() {
			return -1
		}
		return 1
	}
	if du.Code() != ou.Code() {
		if du.Code() < ou.Code() {
			return -1
		}
		return 1
	}
	return compareFloats(d.value, other.value)
}

// Less is true if d orders before other; see Compare.
func (d Distance) Less(other Distance) bool {
	return d.Compare(other) < 0
}

func compareFloats(x, y float64) int {
	xnan, ynan := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xnan && ynan:
		return 0
	case xnan:
		return 1
	case ynan:
		return -1
	case x == 0 && y == 0:
		xneg, yneg := math.Signbit(x), math.Signbit(y)
		if xneg == yneg {
			return 0
		} else if xneg {
			return -1
		}
		return 1
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
