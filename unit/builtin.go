package unit

import (
	"math"

	"github.com/npillmayer/displayunit/env"
)

// Codes of the built-in units.
const (
	PixelCode         Code = 0
	DensityPixelCode  Code = 1
	PercentageCode    Code = 2
	ScalablePixelCode Code = 3
	// MillimeterCode re-uses the code a host styling system has reserved for
	// device independent lengths ("dips").
	MillimeterCode Code = 4
	InchCode       Code = 5
	PointCode      Code = 6
	CentimeterCode Code = 7
	PicaCode       Code = 8
	VWCode         Code = 10
	VHCode         Code = 11
	VMinCode       Code = 12
	VMaxCode       Code = 13
)

// Built-in units.
var (
	Pixel = New(PixelCode, func(env.Environment) float64 {
		return 1.0
	}, "px", "pixels", "pixel")

	Percentage = NewReferenceDependent(PercentageCode, func(env.Environment) float64 {
		return 0.01
	}, "%", "percent", "percents")

	Millimeter = New(MillimeterCode, func(e env.Environment) float64 {
		return e.DeviceDPI() / 25.4
	}, "mm", "millimeters", "millimeter")

	Centimeter = New(CentimeterCode, func(e env.Environment) float64 {
		return e.DeviceDPI() / 2.54
	}, "cm", "centimeters", "centimeter")

	Inch = New(InchCode, func(e env.Environment) float64 {
		return e.DeviceDPI()
	}, "in", "inch", "inches", `"`)

	DensityPixel = New(DensityPixelCode, func(e env.Environment) float64 {
		return e.DeviceDPI() / 160.0
	}, "dp", "dps")

	ScalablePixel = New(ScalablePixelCode, func(e env.Environment) float64 {
		return e.DeviceDPI() / 160.0 * e.FontScale()
	}, "sp", "sps", "em", "rem")

	Point = New(PointCode, func(e env.Environment) float64 {
		return e.DeviceDPI() / 72.0
	}, "pt", "point", "points")

	Pica = New(PicaCode, func(e env.Environment) float64 {
		return e.DeviceDPI() / 6.0
	}, "pc", "pica")

	VW = New(VWCode, func(e env.Environment) float64 {
		return float64(e.DisplayWidth()) / 100.0
	}, "vw", "vws")

	VH = New(VHCode, func(e env.Environment) float64 {
		return float64(e.DisplayHeight()) / 100.0
	}, "vh", "vhs")

	VMin = New(VMinCode, func(e env.Environment) float64 {
		return math.Min(float64(e.DisplayWidth()), float64(e.DisplayHeight())) / 100.0
	}, "vmin", "vmins")

	VMax = New(VMaxCode, func(e env.Environment) float64 {
		return math.Max(float64(e.DisplayWidth()), float64(e.DisplayHeight())) / 100.0
	}, "vmax", "vmaxs")
)

// builtins lists the built-in units ordered by expected frequency of use,
// as the parser tests names in registry order.
func builtins() []*Unit {
	return []*Unit{
		Pixel, Percentage, Millimeter, DensityPixel, ScalablePixel, Inch,
		Point, Centimeter, Pica, VW, VH, VMin, VMax,
	}
}
