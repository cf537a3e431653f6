/*
Package unit implements display units and conversions between them.

A Unit knows how many pixels one of it amounts to in the current device
environment (see package env). Conversions between units are computed by
going through pixels:

    px := value · from.Factor()
    result := px / to.Factor()

Percentages are special, as they need a reference length (in pixels) to be
resolved. Units like these are flagged as reference dependent, and conversions
involving them need a reference length other than NoReference.

Units are registered in a process-wide registry, which initially holds the
built-in units Pixel, Percentage, Millimeter, DensityPixel, ScalablePixel,
Inch, Point, Centimeter, Pica, VW, VH, VMin and VMax. Each unit carries a
small numeric code, which is stable across releases and may be used to store
unit information in a compact form.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unit

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dunit.unit'.
func tracer() tracing.Trace {
	return tracing.Select("dunit.unit")
}
