package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/displayunit"
	"github.com/npillmayer/displayunit/env"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
)

// appKey identifies dunit for configuration files and environment variables.
const appKey = "DUNIT"

// loadConfig is called by cobra before any command runs.
func loadConfig() {
	k, err := setupConfiguration(rootCmd.PersistentFlags(), env.Default())
	if err != nil {
		tracing.Errorf("dunit: %v", err)
		displayunit.Exit(1)
	}
	displayunit.Configuration = k
}

// setupConfiguration reads configuration files and command line flags (flags
// win), routes trace output and configures environment p from the result.
func setupConfiguration(flags *pflag.FlagSet, p *env.Provider) (*koanf.Koanf, error) {
	k := koanf.New(".")
	// config files are in NestedText format
	konf := koanfadapter.New(k, appKey, []string{"nt"})
	konf.InitDefaults()
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, fmt.Errorf("cannot read command line flags: %w", err)
	}
	dest := traceDestination(k.String("logfile"), logDir())
	if err := setupTracing(konf, dest); err != nil {
		return nil, fmt.Errorf("cannot set up tracing: %w", err)
	}
	configureEnvironment(k, p)
	return k, nil
}

// traceDestination turns setting 'logfile' into a URL for trace output.
// Relative file names are located in logdir. An empty result means stderr.
func traceDestination(logfile, logdir string) string {
	switch {
	case logfile == "" || logfile == "stderr":
		return ""
	case strings.Contains(logfile, ":/"):
		return logfile
	case filepath.IsAbs(logfile) || logdir == "":
		return "file://" + logfile
	}
	return "file://" + filepath.Join(logdir, logfile)
}

// setupTracing installs Go logging as the trace adapter for all trace keys.
func setupTracing(konf *koanfadapter.KConf, dest string) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go")
	if dest != "" {
		konf.Set("tracing.destination", dest)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// configureEnvironment sets the device properties of p from configuration
// keys 'dpi', 'font-scale', 'width' and 'height'. Keys not present leave the
// property unchanged.
func configureEnvironment(k *koanf.Koanf, p *env.Provider) {
	if k.Exists("dpi") {
		p.SetDPI(k.Float64("dpi"))
	}
	if k.Exists("font-scale") {
		p.SetFontScale(k.Float64("font-scale"))
	}
	w, h := p.DisplayWidth(), p.DisplayHeight()
	if k.Exists("width") {
		w = k.Int("width")
	}
	if k.Exists("height") {
		h = k.Int("height")
	}
	p.SetDisplaySize(w, h)
	tracer().Infof("environment is %s", env.Describe(p))
}

func logDir() string {
	paths, err := DefaultAppPaths(appKey)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths.LogDir()
}
