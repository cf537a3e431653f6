/*
Package distance implements distances, i.e. values bound to a display unit,
and parsing of distance literals like "12.5mm", "100%" or "1,25 in".

Distances are immutable values. They may be compared and ordered across
units, as long as a conversion between the units is possible without a
reference length.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package distance

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dunit.distance'.
func tracer() tracing.Trace {
	return tracing.Select("dunit.distance")
}
