package env

import (
	"math"
	"sync/atomic"

	"github.com/npillmayer/arithm"
)

// Provider is a mutable environment. Every getter and setter is atomic on its
// own; a setter running concurrently with a conversion may or may not be
// observed by it.
type Provider struct {
	dpi    atomic.Uint64 // float64 bits
	scale  atomic.Uint64 // float64 bits
	width  atomic.Int64
	height atomic.Int64
}

var _ Environment = (*Provider)(nil)

// NewProvider creates a provider with DefaultDPI, DefaultFontScale and a
// display of size 0 x 0.
func NewProvider() *Provider {
	p := &Provider{}
	p.dpi.Store(math.Float64bits(DefaultDPI))
	p.scale.Store(math.Float64bits(DefaultFontScale))
	return p
}

// DeviceDPI is part of interface Environment.
func (p *Provider) DeviceDPI() float64 {
	return math.Float64frombits(p.dpi.Load())
}

// FontScale is part of interface Environment.
func (p *Provider) FontScale() float64 {
	return math.Float64frombits(p.scale.Load())
}

// DisplayWidth is part of interface Environment.
func (p *Provider) DisplayWidth() int {
	return int(p.width.Load())
}

// DisplayHeight is part of interface Environment.
func (p *Provider) DisplayHeight() int {
	return int(p.height.Load())
}

// SetDPI sets the device resolution. Non-positive values are ignored.
func (p *Provider) SetDPI(dpi float64) *Provider {
	if !(dpi > 0) {
		tracer().Errorf("ignoring invalid device DPI %g", dpi)
		return p
	}
	p.dpi.Store(math.Float64bits(dpi))
	return p
}

// SetFontScale sets the font magnification. Non-positive values are ignored.
func (p *Provider) SetFontScale(scale float64) *Provider {
	if !(scale > 0) {
		tracer().Errorf("ignoring invalid font scale %g", scale)
		return p
	}
	p.scale.Store(math.Float64bits(scale))
	return p
}

// SetDisplaySize sets width and height of the display in pixels. Negative
// dimensions are clipped to 0.
func (p *Provider) SetDisplaySize(width, height int) *Provider {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	p.width.Store(int64(width))
	p.height.Store(int64(height))
	return p
}

// --- Static ----------------------------------------------------------------

// Static is an immutable environment.
type Static struct {
	DPI    float64
	Scale  float64
	Width  int
	Height int
}

var _ Environment = Static{}

// DeviceDPI is part of interface Environment.
func (s Static) DeviceDPI() float64 { return s.DPI }

// FontScale is part of interface Environment.
func (s Static) FontScale() float64 { return s.Scale }

// DisplayWidth is part of interface Environment.
func (s Static) DisplayWidth() int { return s.Width }

// DisplayHeight is part of interface Environment.
func (s Static) DisplayHeight() int { return s.Height }

// Snapshot freezes the current values of e.
func Snapshot(e Environment) Static {
	return Static{
		DPI:    e.DeviceDPI(),
		Scale:  e.FontScale(),
		Width:  e.DisplayWidth(),
		Height: e.DisplayHeight(),
	}
}

// Viewport returns the display dimensions of e as a (width, height) pair.
func Viewport(e Environment) arithm.Pair {
	return arithm.P(float64(e.DisplayWidth()), float64(e.DisplayHeight()))
}
