/*
Package env provides the device environment unit conversions are computed in.

Units like millimeters or density pixels depend on properties of the display
device: its resolution (DPI), the font magnification chosen by the user and the
size of the display. Package env abstracts these into interface Environment.
A process-wide environment is installed with Install and read with Get; if
no environment has been installed, a Provider with default values is created
on first use.

Environments are read on every conversion. Clients needing a stable view over
a layout pass should take a Snapshot.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package env

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dunit.env'.
func tracer() tracing.Trace {
	return tracing.Select("dunit.env")
}

// Environment supplies the device properties conversions depend on.
// Implementations must be safe for concurrent calls of the getters.
type Environment interface {
	DeviceDPI() float64 // pixels per inch
	FontScale() float64 // user font magnification, 1.0 is normal
	DisplayWidth() int  // in pixels
	DisplayHeight() int // in pixels
}

// Defaults for a Provider which has not been configured.
const (
	DefaultDPI       = 160.0
	DefaultFontScale = 1.0
)

// --- Process-wide environment ----------------------------------------------

type holder struct {
	e Environment
}

var current atomic.Value // holds a holder
var defaultOnce sync.Once
var defaultProvider *Provider

// Default returns the process-wide default provider, creating it on first call.
// It is the environment Get returns as long as no other has been installed.
func Default() *Provider {
	defaultOnce.Do(func() {
		defaultProvider = NewProvider()
		tracer().Debugf("created default environment %s", Describe(defaultProvider))
	})
	return defaultProvider
}

// Get returns the process-wide environment.
func Get() Environment {
	if h, ok := current.Load().(holder); ok && h.e != nil {
		return h.e
	}
	return Default()
}

// Install makes e the process-wide environment and returns the environment
// previously in effect. Installing nil reverts to the default provider.
func Install(e Environment) Environment {
	prev := Get()
	current.Store(holder{e: e})
	if e != nil {
		tracer().Debugf("installed environment %s", Describe(e))
	}
	return prev
}

// Describe returns a short human readable description of an environment.
func Describe(e Environment) string {
	return fmt.Sprintf("[dpi=%g, font-scale=%g, display=%dx%d]",
		e.DeviceDPI(), e.FontScale(), e.DisplayWidth(), e.DisplayHeight())
}
