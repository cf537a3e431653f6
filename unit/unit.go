package unit

import (
	"strconv"

	"github.com/npillmayer/displayunit/env"
)

// Code is a small numeric identifier of a unit, stable across releases.
type Code uint8

// FactorFunc returns the number of pixels per one unit in a given environment.
// For reference dependent units it returns pixels per unit and per one pixel
// of reference length.
type FactorFunc func(env.Environment) float64

// Unit is an immutable descriptor of a display unit. Units are compared by
// identity, i.e. by pointer.
type Unit struct {
	code         Code
	names        []string
	refDependent bool
	factor       FactorFunc
}

// New creates a unit. The first name is the canonical one, used for output.
// New panics if no name is given or factor is nil.
func New(code Code, factor FactorFunc, names ...string) *Unit {
	if len(names) == 0 || names[0] == "" {
		panic("unit must have at least one non-empty name")
	}
	if factor == nil {
		panic("unit must have a conversion factor")
	}
	u := &Unit{
		code:   code,
		names:  make([]string, len(names)),
		factor: factor,
	}
	copy(u.names, names)
	return u
}

// NewReferenceDependent creates a unit which needs a reference length to be
// converted, like percentages do. It panics under the same conditions as New.
func NewReferenceDependent(code Code, factor FactorFunc, names ...string) *Unit {
	u := New(code, factor, names...)
	u.refDependent = true
	return u
}

// Code returns the numeric code of u.
func (u *Unit) Code() Code {
	return u.code
}

// Name returns the canonical name of u.
func (u *Unit) Name() string {
	return u.names[0]
}

// Names returns all names of u, canonical name first.
func (u *Unit) Names() []string {
	n := make([]string, len(u.names))
	copy(n, u.names)
	return n
}

// IsReferenceDependent is true if u needs a reference length for conversions.
func (u *Unit) IsReferenceDependent() bool {
	return u.refDependent
}

// Factor returns the number of pixels per one u in the process-wide environment.
func (u *Unit) Factor() float64 {
	return u.factor(env.Get())
}

// FactorIn returns the number of pixels per one u in environment e.
func (u *Unit) FactorIn(e env.Environment) float64 {
	return u.factor(e)
}

// FactorFunc returns the conversion rule of u. It may be used to register a
// unit with a different code or different names, but identical conversion.
func (u *Unit) FactorFunc() FactorFunc {
	return u.factor
}

func (u *Unit) String() string {
	return u.names[0]
}

// Format formats a value in unit u, e.g. "12.5mm". The number is printed
// without exponent in the shortest form which parses back to the same value.
func (u *Unit) Format(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + u.names[0]
}
