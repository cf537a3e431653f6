package distance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/displayunit/unit"
)

// Parse parses a distance literal, e.g. "12.5mm". If the literal carries no
// unit, pixels are assumed.
func Parse(text string) (Distance, error) {
	return ParseWithDefault(text, unit.Pixel)
}

// ParseWithDefault parses a distance literal. Surrounding whitespace is
// ignored. The unit suffix is matched case-insensitively against the names
// of all registered units. If the literal carries no unit or an unknown one,
// the unit is set to deflt (pixels if deflt is nil).
//
// Both '.' and ',' are accepted as decimal separator, but at most one of them.
// Signs are not accepted. Invalid literals result in an error of kind
// unit.ErrMalformed.
func ParseWithDefault(text string, deflt *unit.Unit) (Distance, error) {
	return parse(text, deflt, false)
}

// ParseStrict is like ParseWithDefault, but fails with an error of kind
// unit.ErrUnknownName for unit suffixes which are not registered.
func ParseStrict(text string, deflt *unit.Unit) (Distance, error) {
	return parse(text, deflt, true)
}

func parse(text string, deflt *unit.Unit, strict bool) (Distance, error) {
	if deflt == nil {
		deflt = unit.Pixel
	}
	number, suffix, err := split(strings.TrimSpace(text))
	if err != nil {
		return Distance{}, unit.Malformed(text, err)
	}
	value, err := parseNumber(number)
	if err != nil {
		return Distance{}, unit.Malformed(text, err)
	}
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return New(value, deflt), nil
	}
	if u := unit.Lookup(suffix); u != nil {
		return New(value, u), nil
	}
	if strict {
		return Distance{}, unit.UnknownName(suffix)
	}
	tracer().Debugf("unknown unit %q in %q, using [%s]", suffix, text, deflt)
	return New(value, deflt), nil
}

// parseNumber converts the number part of a distance literal, which consists
// of digits and separators only.
func parseNumber(s string) (float64, error) {
	if n := strings.Count(s, ".") + strings.Count(s, ","); n > 1 {
		return 0, fmt.Errorf("%d decimal separators in %q", n, s)
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}
