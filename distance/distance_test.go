package distance

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/displayunit/unit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var phone = env.Static{DPI: 320, Scale: 1.0, Width: 1080, Height: 1920}

func usePhone(t *testing.T) func() {
	teardown := gotestingadapter.QuickConfig(t, "dunit.distance")
	prev := env.Install(phone)
	return func() {
		env.Install(prev)
		teardown()
	}
}

func formatted(ds []Distance) []string {
	s := make([]string, len(ds))
	for i, d := range ds {
		s[i] = d.String()
	}
	return s
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestZeroDistance(t *testing.T) {
	defer usePhone(t)()
	//
	var d Distance
	if d.Unit() != unit.Pixel || d.String() != "0px" {
		t.Errorf("expected zero distance to be 0px, is %s", d)
	}
}

func TestNewNilUnit(t *testing.T) {
	defer usePhone(t)()
	//
	if New(1, nil) != New(1, unit.Pixel) {
		t.Errorf("expected distance with nil unit to be identical to one in pixels")
	}
}

func TestConvert(t *testing.T) {
	defer usePhone(t)()
	//
	d := New(1, unit.Inch)
	if c, err := d.Convert(unit.Inch); err != nil || c != d {
		t.Errorf("expected identity conversion to return d itself")
	}
	c, err := d.Convert(unit.DensityPixel)
	if err != nil || c.Value() != 160 || c.Unit() != unit.DensityPixel {
		t.Errorf("expected 1in to be 160dp, is %s (%v)", c, err)
	}
	if _, err = New(50, unit.Percentage).Convert(unit.Pixel); !errors.Is(err, unit.ErrMissingReference) {
		t.Errorf("expected missing reference error, have %v", err)
	}
	if c, err = New(50, unit.Percentage).ConvertRef(unit.Pixel, 400); err != nil || c.Value() != 200 {
		t.Errorf("expected 50%% of 400px to be 200px, is %s (%v)", c, err)
	}
	if px, err := New(10, unit.VW).Pixels(unit.NoReference); err != nil || math.Abs(px-108) > 1e-9 {
		t.Errorf("expected 10vw to be 108px, is %g (%v)", px, err)
	}
}

func TestEquals(t *testing.T) {
	defer usePhone(t)()
	//
	for i, x := range []struct {
		a, b  Distance
		equal bool
	}{
		{New(160, unit.DensityPixel), New(320, unit.Pixel), true},
		{New(320, unit.Pixel), New(160, unit.DensityPixel), true},
		{New(1, unit.Inch), New(320, unit.Pixel), true},
		{New(1, unit.Inch), New(321, unit.Pixel), false},
		{New(50, unit.Percentage), New(50, unit.Percentage), true},
		{New(50, unit.Percentage), New(50, unit.Pixel), false},
		{New(50, unit.Pixel), New(50, unit.Percentage), false},
		{New(math.NaN(), unit.Pixel), New(math.NaN(), unit.Pixel), false},
		{New(math.Copysign(0, -1), unit.Pixel), New(0, unit.Millimeter), true},
	} {
		if eq := x.a.Equals(x.b); eq != x.equal {
			t.Errorf("test %d: expected %s = %s to be %v", i, x.a, x.b, x.equal)
		}
	}
}

func TestHash(t *testing.T) {
	defer usePhone(t)()
	//
	for _, pair := range [][2]Distance{
		{New(160, unit.DensityPixel), New(320, unit.Pixel)},
		{New(1, unit.Inch), New(320, unit.Pixel)},
		{New(2, unit.Inch), New(320, unit.DensityPixel)},
		{New(0, unit.Pixel), New(math.Copysign(0, -1), unit.Inch)},
	} {
		if !pair[0].Equals(pair[1]) {
			t.Fatalf("expected %s to equal %s", pair[0], pair[1])
		}
		if pair[0].Hash() != pair[1].Hash() {
			t.Errorf("expected %s and %s to have equal hashes", pair[0], pair[1])
		}
	}
	if New(50, unit.Percentage).Hash() == New(50, unit.Pixel).Hash() {
		t.Errorf("expected 50%% and 50px to have different hashes")
	}
	if New(1, unit.Inch).Hash() == New(1, unit.Pixel).Hash() {
		t.Errorf("expected 1in and 1px to have different hashes")
	}
}

func TestEqualsAgreesWithHash(t *testing.T) {
	defer usePhone(t)()
	//
	units := []*unit.Unit{
		unit.Pixel, unit.Millimeter, unit.Centimeter, unit.Inch,
		unit.DensityPixel, unit.ScalablePixel, unit.Point, unit.Pica,
	}
	equal := 0
	for x := 1.0; x < 200; x += 0.37 {
		for _, from := range units {
			a := New(x, from)
			for _, to := range units {
				b, err := a.Convert(to)
				if err != nil {
					t.Fatalf("cannot convert %s to %s: %v", a, to, err)
				}
				if a.Equals(b) != b.Equals(a) {
					t.Errorf("equals is not symmetric for %s, %s", a, b)
				}
				if a.Equals(b) {
					equal++
					if a.Hash() != b.Hash() {
						t.Errorf("%s equals %s, but hashes differ", a, b)
					}
					if a.Compare(b) != 0 {
						t.Errorf("%s equals %s, but compares as %d", a, b, a.Compare(b))
					}
				}
			}
		}
	}
	if equal == 0 {
		t.Errorf("expected at least some converted distances to be equal")
	}
}

func TestCompareLaws(t *testing.T) {
	defer usePhone(t)()
	//
	ds := []Distance{
		New(1, unit.Inch), New(100, unit.Pixel), New(80, unit.DensityPixel),
		New(2, unit.Inch), New(10, unit.Pixel), New(320, unit.Pixel),
		New(160, unit.DensityPixel),
	}
	for _, a := range ds {
		if a.Compare(a) != 0 {
			t.Errorf("compare is not reflexive for %s", a)
		}
		for _, b := range ds {
			if sign(a.Compare(b)) != -sign(b.Compare(a)) {
				t.Errorf("compare is not antisymmetric for %s, %s", a, b)
			}
			if a.Equals(b) && a.Compare(b) != 0 {
				t.Errorf("compare is inconsistent with equals for %s, %s", a, b)
			}
			for _, c := range ds {
				if a.Compare(b) < 0 && b.Compare(c) < 0 && a.Compare(c) >= 0 {
					t.Errorf("compare is not transitive for %s < %s < %s", a, b, c)
				}
			}
		}
	}
}

func TestSort(t *testing.T) {
	defer usePhone(t)()
	//
	ds := []Distance{
		New(1, unit.Inch), New(100, unit.Pixel), New(80, unit.DensityPixel),
		New(2, unit.Inch), New(10, unit.Pixel),
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Less(ds[j]) })
	expected := []string{"10px", "100px", "80dp", "1in", "2in"}
	if diff := cmp.Diff(expected, formatted(ds)); diff != "" {
		t.Errorf("unexpected sort order (-want +got):\n%s", diff)
	}
}

func TestCompareSpecialValues(t *testing.T) {
	defer usePhone(t)()
	//
	nan, one := New(math.NaN(), unit.Pixel), New(1, unit.Pixel)
	inf := New(math.Inf(1), unit.Pixel)
	negzero, zero := New(math.Copysign(0, -1), unit.Pixel), New(0, unit.Pixel)
	for i, x := range []struct {
		a, b Distance
		cmp  int
	}{
		{nan, one, 1},
		{one, nan, -1},
		{nan, inf, 1},
		{nan, nan, 0},
		{negzero, zero, -1},
		{zero, negzero, 1},
		{zero, zero, 0},
		{negzero, negzero, 0},
		{one, inf, -1},
	} {
		if c := x.a.Compare(x.b); c != x.cmp {
			t.Errorf("test %d: expected compare(%s, %s) = %d, is %d", i, x.a, x.b, x.cmp, c)
		}
	}
}

func TestCompareReferenceDependent(t *testing.T) {
	defer usePhone(t)()
	//
	pc, px := New(50, unit.Percentage), New(10, unit.Pixel)
	if pc.Compare(px) != 1 || px.Compare(pc) != -1 {
		t.Errorf("expected percentages to order after pixels")
	}
	if New(20, unit.Percentage).Compare(pc) != -1 {
		t.Errorf("expected 20%% < 50%%")
	}
}

func TestCompareMixedTransitive(t *testing.T) {
	defer usePhone(t)()
	//
	ds := []Distance{
		New(1000, unit.Pixel), New(50, unit.Percentage), New(1, unit.Millimeter),
		New(10, unit.Percentage), New(2, unit.Inch), New(3, unit.VW),
	}
	for _, a := range ds {
		for _, b := range ds {
			if sign(a.Compare(b)) != -sign(b.Compare(a)) {
				t.Errorf("compare is not antisymmetric for %s, %s", a, b)
			}
			for _, c := range ds {
				if a.Compare(b) < 0 && b.Compare(c) < 0 && a.Compare(c) >= 0 {
					t.Errorf("compare is not transitive for %s < %s < %s", a, b, c)
				}
			}
		}
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Less(ds[j]) })
	expected := []string{"1mm", "3vw", "2in", "1000px", "10%", "50%"}
	if diff := cmp.Diff(expected, formatted(ds)); diff != "" {
		t.Errorf("unexpected sort order (-want +got):\n%s", diff)
	}
}
