package unit

import (
	"github.com/npillmayer/displayunit/env"
)

// NoReference signals a conversion without reference length. Any negative
// value (or NaN) is treated as NoReference.
const NoReference = -1.0

func hasReference(ref float64) bool {
	return ref >= 0 // false for NaN
}

// Convert converts value from one unit to another, in the process-wide
// environment. ref is a reference length in pixels, needed if either unit is
// reference dependent; otherwise pass NoReference.
func Convert(value float64, from, to *Unit, ref float64) (float64, error) {
	return ConvertIn(env.Get(), value, from, to, ref)
}

// ConvertIn converts value from one unit to another, in environment e.
//
// If from and to are the same unit, value is returned unchanged. Otherwise value is
// converted to pixels and from there to the target unit.
func ConvertIn(e env.Environment, value float64, from, to *Unit, ref float64) (float64, error) {
	if from == to {
		return value, nil
	}
	result := value
	if from.refDependent {
		if !hasReference(ref) {
			tracer().Debugf("cannot convert %g%s without reference", value, from)
			return 0, missingReference(from)
		}
		result *= from.factor(e) * ref
	} else {
		result *= from.factor(e)
	}
	if to.refDependent {
		if !hasReference(ref) {
			tracer().Debugf("cannot convert to [%s] without reference", to)
			return 0, missingReference(to)
		}
		result /= to.factor(e) * ref
	} else {
		result /= to.factor(e)
	}
	return result, nil
}

// ToPixels converts a value in unit u to pixels.
func (u *Unit) ToPixels(value float64, ref float64) (float64, error) {
	return Convert(value, u, Pixel, ref)
}

// FromPixels converts a value in pixels to unit u.
func (u *Unit) FromPixels(px float64, ref float64) (float64, error) {
	return Convert(px, Pixel, u, ref)
}

// ConvertFrom converts value from unit other to unit u.
func (u *Unit) ConvertFrom(value float64, other *Unit, ref float64) (float64, error) {
	return Convert(value, other, u, ref)
}
