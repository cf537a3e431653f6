// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/displayunit/distance"
	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/displayunit/unit"
	"github.com/npillmayer/schuko/tracing"
	"github.com/shopspring/decimal"
)

// tracer traces with key 'dunit.cli'.
func tracer() tracing.Trace {
	return tracing.Select("dunit.cli")
}

// Formatter writes items to an output, returning true if it knew how to
// format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats distances, units, environments and tables.
// Numbers are rounded to Precision decimal places, if Precision ≥ 0.
type DefaultFormatter struct {
	Precision int
}

var _ Formatter = DefaultFormatter{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := fmt.Fprintf(w, "▶ %s\n", t)
		return err == nil, err
	case float64:
		_, err := fmt.Fprintf(w, "▶ %s\n", df.Number(t))
		return err == nil, err
	case distance.Distance:
		_, err := fmt.Fprintf(w, "▶ %s%s\n", df.Number(t.Value()), t.Unit().Name())
		return err == nil, err
	case []*unit.Unit:
		return df.Format(UnitsTable(t, env.Get()), w)
	case env.Environment:
		return df.Format(EnvironmentTable(t), w)
	case table.Writer:
		if t == nil {
			_, err := io.WriteString(w, "▶ (empty table)\n")
			return err == nil, err
		}
		_, err := fmt.Fprintf(w, "%s\n", t.Render())
		return err == nil, err
	case error:
		_, err := fmt.Fprintf(w, "▶ error: %s\n", t.Error())
		return err == nil, err
	}
	tracer().Debugf("no format for item of type %T", item)
	_, err := fmt.Fprintf(w, "▶ object of type %T\n", item)
	return false, err
}

// Number formats a float, rounded to df.Precision decimal places.
func (df DefaultFormatter) Number(f float64) string {
	if df.Precision < 0 {
		return decimal.NewFromFloat(f).String()
	}
	return decimal.NewFromFloat(f).Round(int32(df.Precision)).String()
}

// --- Property tables -------------------------------------------------------

// UnitsTable creates a table listing units with their conversion factors in
// environment e.
func UnitsTable(units []*unit.Unit, e env.Environment) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Display units")
	tw.AppendHeader(table.Row{"code", "unit", "aliases", "px per unit"})
	for _, u := range units {
		factor := fmt.Sprintf("%g", u.FactorIn(e))
		if u.IsReferenceDependent() {
			factor += " × reference"
		}
		tw.AppendRow(table.Row{
			u.Code(),
			u.Name(),
			strings.Join(u.Names()[1:], " "),
			factor,
		})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// EnvironmentTable creates a table displaying the properties of e.
func EnvironmentTable(e env.Environment) table.Writer {
	vp := env.Viewport(e)
	tw := table.NewWriter()
	tw.SetTitle("Environment")
	tw.AppendRow(table.Row{"device DPI", e.DeviceDPI()})
	tw.AppendRow(table.Row{"font scale", e.FontScale()})
	tw.AppendRow(table.Row{"display", fmt.Sprintf("%g × %g px", vp.X(), vp.Y())})
	tw.SetStyle(table.StyleLight)
	return tw
}
