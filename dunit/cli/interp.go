package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/displayunit"
	"github.com/npillmayer/displayunit/distance"
	"github.com/npillmayer/displayunit/dunit/ui/termui"
	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/displayunit/unit"
)

// completions lists the statement keywords of interpreter, apart from
// distance literals, with completions for their first argument.
func completions() termui.Completions {
	c := termui.Completions{
		"units": nil, "env": nil, "dpi": nil, "scale": nil, "display": nil,
		"ref": {"none"},
	}
	for _, u := range unit.Units() {
		c["default"] = append(c["default"], u.Name())
	}
	return c
}

const interpreterHelp = `
dunit will interpret the following statements:

  <distance>                 : parse a distance and show it in pixels
  <distance> to <unit>       : convert a distance to another unit
  units                      : list registered units
  env                        : show the device environment
  dpi <number>               : set the device resolution
  scale <number>             : set the font scale
  display <width> <height>   : set the display size in pixels
  ref [<pixels> | none]      : set or clear the reference length for percentages
  default <unit>             : set the unit assumed for plain numbers

`

// interpreter evaluates statements for the REPL as well as for batch mode.
type interpreter struct {
	out      io.Writer
	format   termui.DefaultFormatter
	provider *env.Provider // environment to configure
	deflt    *unit.Unit    // unit for literals without unit
	ref      float64       // reference length for percentages
}

func newInterpreter(out io.Writer, provider *env.Provider, precision int) *interpreter {
	return &interpreter{
		out:      out,
		format:   termui.DefaultFormatter{Precision: precision},
		provider: provider,
		deflt:    unit.Pixel,
		ref:      unit.NoReference,
	}
}

// InterpretLine is part of interface termui.LineInterpreter.
func (intp *interpreter) InterpretLine(line string) {
	line = strings.Trim(line, "\x00")
	result, err := intp.eval(line)
	if err != nil {
		tracer().Debugf("statement %q failed: %v", line, err)
		intp.format.Format(err, intp.out)
		return
	}
	if result != nil {
		intp.format.Format(result, intp.out)
	}
}

var errArgs = errors.New("wrong number of arguments")

// eval evaluates a statement and returns an item to print.
func (intp *interpreter) eval(line string) (interface{}, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}
	switch words[0] {
	case "units":
		return unit.Units(), nil
	case "env":
		return env.Environment(intp.provider), nil
	case "dpi", "scale":
		if len(words) != 2 {
			return nil, errArgs
		}
		f, err := strconv.ParseFloat(words[1], 64)
		if err != nil {
			return nil, err
		}
		if words[0] == "dpi" {
			intp.provider.SetDPI(f)
		} else {
			intp.provider.SetFontScale(f)
		}
		return env.Environment(intp.provider), nil
	case "display":
		if len(words) != 3 {
			return nil, errArgs
		}
		w, err := strconv.Atoi(words[1])
		if err != nil {
			return nil, err
		}
		h, err := strconv.Atoi(words[2])
		if err != nil {
			return nil, err
		}
		intp.provider.SetDisplaySize(w, h)
		return env.Environment(intp.provider), nil
	case "ref":
		if len(words) != 2 {
			return nil, errArgs
		}
		if words[1] == "none" {
			intp.ref = unit.NoReference
			return "reference cleared", nil
		}
		d, err := distance.Parse(words[1])
		if err != nil {
			return nil, err
		}
		if intp.ref, err = d.Pixels(unit.NoReference); err != nil {
			return nil, err
		}
		return fmt.Sprintf("reference is %spx", intp.format.Number(intp.ref)), nil
	case "default":
		if len(words) != 2 {
			return nil, errArgs
		}
		u, err := displayunit.UnitForName(words[1])
		if err != nil {
			return nil, err
		}
		intp.deflt = u
		return fmt.Sprintf("default unit is %s", u), nil
	}
	return intp.convert(line)
}

// convert evaluates statements of the form "<distance> [to <unit>]".
func (intp *interpreter) convert(line string) (interface{}, error) {
	text, target := line, unit.Pixel
	if i := strings.LastIndex(line, " to "); i >= 0 {
		u, err := displayunit.UnitForName(strings.TrimSpace(line[i+4:]))
		if err != nil {
			return nil, err
		}
		text, target = line[:i], u
	}
	d, err := distance.ParseWithDefault(text, intp.deflt)
	if err != nil {
		return nil, err
	}
	if d, err = d.ConvertRef(target, intp.ref); err != nil {
		return nil, err
	}
	return d, nil
}
