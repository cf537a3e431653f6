package unit

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func names(units []*Unit) []string {
	n := make([]string, len(units))
	for i, u := range units {
		n[i] = u.Name()
	}
	return n
}

func TestBuiltinCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	for code, name := range map[Code]string{
		0: "px", 1: "dp", 2: "%", 3: "sp", 4: "mm", 5: "in", 6: "pt", 7: "cm", 8: "pc",
		10: "vw", 11: "vh", 12: "vmin", 13: "vmax",
	} {
		u := ForCode(code)
		if u == nil {
			t.Errorf("no unit for code %d", code)
		} else if u.Name() != name || u.Code() != code {
			t.Errorf("expected code %d to be [%s], is [%s]", code, name, u)
		}
	}
	if ForCode(9) != nil {
		t.Errorf("expected code 9 to be unused")
	}
}

func TestBuiltinNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	for _, u := range builtins() {
		if ForCode(u.Code()) != u {
			t.Errorf("unit for code %d is not [%s]", u.Code(), u)
		}
		for _, name := range u.Names() {
			for _, n := range []string{name, strings.ToUpper(name), strings.Title(name)} {
				if found, err := ForName(n); err != nil || found != u {
					t.Errorf("expected name %q to find [%s], found [%v] (%v)", n, u, found, err)
				}
			}
		}
	}
	for _, x := range []struct {
		name string
		u    *Unit
	}{
		{"pixels", Pixel}, {"percents", Percentage}, {"Millimeters", Millimeter},
		{"inches", Inch}, {`"`, Inch}, {"REM", ScalablePixel}, {"em", ScalablePixel},
		{"points", Point}, {"pica", Pica}, {"vws", VW}, {"vhs", VH}, {"vmins", VMin},
		{"vmaxs", VMax}, {"dps", DensityPixel},
	} {
		if u := Lookup(x.name); u != x.u {
			t.Errorf("expected %q to find [%s], found [%v]", x.name, x.u, u)
		}
	}
	_, err := ForName("furlong")
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected unknown name error, have %v", err)
	}
	if Lookup("") != nil {
		t.Errorf("expected empty name not to match a unit")
	}
}

func TestIterationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	r := NewRegistry(builtins()...)
	expected := []string{"px", "%", "mm", "dp", "sp", "in", "pt", "cm", "pc", "vw", "vh", "vmin", "vmax"}
	if diff := cmp.Diff(expected, names(r.Units())); diff != "" {
		t.Errorf("unexpected order of built-ins (-want +got):\n%s", diff)
	}
	twip := New(20, func(e env.Environment) float64 {
		return e.DeviceDPI() / 1440
	}, "twip", "twips")
	r.Register(twip)
	if diff := cmp.Diff(append(expected, "twip"), names(r.Units())); diff != "" {
		t.Errorf("expected twip to be appended (-want +got):\n%s", diff)
	}
	if r.ForCode(20) != twip || r.Lookup("TWIPS") != twip {
		t.Errorf("expected twip to be registered")
	}
}

func TestReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	r := NewRegistry(builtins()...)
	mm := New(MillimeterCode, Millimeter.FactorFunc(), "millis")
	r.Register(mm)
	if r.ForCode(MillimeterCode) != mm {
		t.Fatalf("expected unit for code %d to be replaced", MillimeterCode)
	}
	if r.Len() != len(builtins()) {
		t.Errorf("expected %d units after replacement, have %d", len(builtins()), r.Len())
	}
	if n := names(r.Units()); n[2] != "millis" {
		t.Errorf("expected replacement to keep position, order is %v", n)
	}
	if r.Lookup("mm") != nil {
		t.Errorf("expected names of replaced unit to be gone")
	}
	if ForCode(MillimeterCode) != Millimeter {
		t.Errorf("expected process-wide registry to be unaffected")
	}
}

func TestShadowedNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	r := NewRegistry(builtins()...)
	shadow := New(30, Pixel.FactorFunc(), "dots", "PX")
	r.Register(shadow)
	if r.Lookup("px") != Pixel {
		t.Errorf("expected first unit in order to win for name 'px'")
	}
	if r.Lookup("dots") != shadow {
		t.Errorf("expected 'dots' to find the new unit")
	}
}

func TestRegisterProcessWide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	quarter := New(42, func(e env.Environment) float64 {
		return e.DeviceDPI() / 101.6
	}, "Q", "quarter-millimeters")
	Register(quarter)
	if ForCode(42) != quarter {
		t.Errorf("expected code 42 to be registered")
	}
	if u, err := ForName("q"); err != nil || u != quarter {
		t.Errorf("expected name 'q' to find unit Q, found [%v] (%v)", u, err)
	}
	units := Units()
	if units[len(units)-1] != quarter {
		t.Errorf("expected Q to be last in iteration order")
	}
}

func TestConcurrentRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	r := NewRegistry(builtins()...)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if r.Lookup("mm") != Millimeter || r.ForCode(PixelCode) != Pixel {
					t.Error("lost a built-in unit during registration")
					return
				}
			}
		}()
	}
	for c := 100; c < 150; c++ {
		r.Register(New(Code(c), Pixel.FactorFunc(), fmt.Sprintf("u%d", c)))
	}
	wg.Wait()
	if r.Len() != len(builtins())+50 {
		t.Errorf("expected %d units, have %d", len(builtins())+50, r.Len())
	}
}

func TestNewPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dunit.unit")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected unit without name to panic")
		}
	}()
	New(99, Pixel.FactorFunc())
}
