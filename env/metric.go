package env

import (
	"gioui.org/unit"
)

// dpPerInch is the resolution at which one density pixel equals one pixel.
const dpPerInch = 160.0

// FromMetric creates an environment from a gioui metric. A zero PxPerDp or
// PxPerSp is taken as 1, the way unit.Metric treats it.
func FromMetric(m unit.Metric, width, height int) Static {
	pxPerDp, pxPerSp := float64(m.PxPerDp), float64(m.PxPerSp)
	if pxPerDp == 0 {
		pxPerDp = 1
	}
	if pxPerSp == 0 {
		pxPerSp = 1
	}
	return Static{
		DPI:    pxPerDp * dpPerInch,
		Scale:  pxPerSp / pxPerDp,
		Width:  width,
		Height: height,
	}
}

// ToMetric returns the gioui metric equivalent to e.
func ToMetric(e Environment) unit.Metric {
	pxPerDp := e.DeviceDPI() / dpPerInch
	return unit.Metric{
		PxPerDp: float32(pxPerDp),
		PxPerSp: float32(pxPerDp * e.FontScale()),
	}
}
