// Package cli implements the dunit command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/displayunit"
	"github.com/npillmayer/displayunit/dunit/ui/termui"
	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/displayunit/unit"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dunit",
	Short: "Parse and convert lengths in display units",
	Long: `Welcome to dunit V0.1

dunit parses lengths like "12.5mm", "160dp" or "50%" and converts them
between physical units, pixels, density independent pixels and viewport
units, for a configurable device (DPI, font scale, display size).

If called without a sub-command, dunit prompts for statements in a
terminal REPL.

`,
	Run: runREPL,
}

var convertCmd = &cobra.Command{
	Use:   "convert <distance>...",
	Short: "Convert distances to another unit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List registered display units",
	Run: func(cmd *cobra.Command, args []string) {
		formatter().Format(unit.Units(), cmd.OutOrStdout())
	},
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the device environment",
	Run: func(cmd *cobra.Command, args []string) {
		formatter().Format(env.Get(), cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by dunit.main().
func Execute() {
	if rootCmd.Execute() != nil {
		displayunit.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.Float64("dpi", env.DefaultDPI, "Device resolution in pixels per inch")
	flags.Float64("font-scale", env.DefaultFontScale, "Font magnification")
	flags.Int("width", 0, "Display width in pixels")
	flags.Int("height", 0, "Display height in pixels")
	flags.Int("precision", -1, "Decimal places of results, -1 for all")
	flags.String("logfile", "stderr", "URL of log output location")
	//
	convertCmd.Flags().StringP("to", "t", "px", "Target unit")
	convertCmd.Flags().StringP("default", "d", "px", "Unit assumed for plain numbers")
	convertCmd.Flags().Float64P("ref", "r", unit.NoReference, "Reference length in pixels for percentages")
	rootCmd.AddCommand(convertCmd, unitsCmd, envCmd)
}

func formatter() termui.DefaultFormatter {
	precision := -1
	if displayunit.Configuration != nil {
		precision = displayunit.Configuration.Int("precision")
	}
	return termui.DefaultFormatter{Precision: precision}
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	dflt, _ := cmd.Flags().GetString("default")
	ref, _ := cmd.Flags().GetFloat64("ref")
	target, err := displayunit.UnitForName(to)
	if err != nil {
		return err
	}
	deflt, err := displayunit.UnitForName(dflt)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, arg := range args {
		v, err := displayunit.ParseAndConvertRef(arg, deflt, target, ref)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		fmt.Fprintf(out, "%s%s\n", formatter().Number(v), target.Name())
	}
	return nil
}

func runREPL(cmd *cobra.Command, args []string) {
	tracing.Infof("dunit interpreter called")
	repl, err := termui.NewREPL("dunit", "0.1", completions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start REPL: %v\n", err)
		displayunit.Exit(1)
	}
	stdout, _ := repl.Outputs()
	repl.Interpreter = newInterpreter(stdout, env.Default(), formatter().Precision)
	repl.Helper = func(w io.Writer) {
		io.WriteString(w, interpreterHelp)
	}
	repl.Run(true)
}
