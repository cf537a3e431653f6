/*
Package displayunit parses, represents and converts lengths in display units.

Lengths are written as literals like "12.5mm", "100%" or "1,25in" and are
converted between physical units (mm, cm, in, pt, pc), pixels, density
independent pixels (dp), scalable font pixels (sp) and viewport relative units
(vw, vh, vmin, vmax). Conversions depend on the device environment, see
package env.

This package is a façade over packages unit and distance:

    px, err := displayunit.ParseAndConvert("12.5mm", nil, unit.Pixel)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package displayunit

import (
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/displayunit/distance"
	"github.com/npillmayer/displayunit/unit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dunit'.
func tracer() tracing.Trace {
	return tracing.Select("dunit")
}

// Configuration holds global configuration values of the dunit command.
// We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ---------------------------------------------------------------------------

// ParseAndConvert parses a distance literal and converts it to unit target.
// Literals without a unit (or with an unknown one) are taken to be in
// deflt, or in pixels if deflt is nil.
func ParseAndConvert(text string, deflt, target *unit.Unit) (float64, error) {
	return ParseAndConvertRef(text, deflt, target, unit.NoReference)
}

// ParseAndConvertRef is like ParseAndConvert, resolving reference dependent
// units against reference length ref (in pixels).
func ParseAndConvertRef(text string, deflt, target *unit.Unit, ref float64) (float64, error) {
	d, err := distance.ParseWithDefault(text, deflt)
	if err != nil {
		return 0, err
	}
	v, err := unit.Convert(d.Value(), d.Unit(), target, ref)
	if err != nil {
		tracer().Debugf("cannot convert %q: %v", text, err)
		return 0, err
	}
	return v, nil
}

// ToPixels converts a value in unit source to pixels. Pass unit.NoReference
// for ref if source is not reference dependent.
func ToPixels(value float64, source *unit.Unit, ref float64) (float64, error) {
	return source.ToPixels(value, ref)
}

// FromPixels converts a value in pixels to unit target. Pass unit.NoReference
// for ref if target is not reference dependent.
func FromPixels(px float64, target *unit.Unit, ref float64) (float64, error) {
	return target.FromPixels(px, ref)
}

// UnitForName returns the registered unit carrying name (case-insensitive),
// or an error of kind unit.ErrUnknownName.
func UnitForName(name string) (*unit.Unit, error) {
	return unit.ForName(name)
}

// UnitForCode returns the registered unit with the given code, or nil.
func UnitForCode(code unit.Code) *unit.Unit {
	return unit.ForCode(code)
}

// RegisterUnit installs u in the process-wide registry, replacing a unit with
// the same code.
func RegisterUnit(u *unit.Unit) {
	tracer().Infof("registering display unit [%s] with code %d", u, u.Code())
	unit.Register(u)
}
