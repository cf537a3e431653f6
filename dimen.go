package displayunit

import (
	"math"

	"github.com/npillmayer/displayunit/distance"
	"github.com/npillmayer/displayunit/unit"
	"github.com/npillmayer/tyse/core/dimen"
)

// ToDimen converts a distance to a typesetter dimension (scaled big points).
// The conversion goes through inches, i.e. depends on the device DPI.
// ref is the reference length in pixels for reference dependent units.
func ToDimen(d distance.Distance, ref float64) (dimen.Dimen, error) {
	in, err := unit.Convert(d.Value(), d.Unit(), unit.Inch, ref)
	if err != nil {
		return dimen.Zero, err
	}
	return dimen.Dimen(math.Round(in * float64(dimen.IN))), nil
}

// FromDimen converts a typesetter dimension to a distance in unit u.
func FromDimen(x dimen.Dimen, u *unit.Unit, ref float64) (distance.Distance, error) {
	in := distance.New(float64(x)/float64(dimen.IN), unit.Inch)
	return in.ConvertRef(u, ref)
}
