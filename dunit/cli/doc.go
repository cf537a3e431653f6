package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dunit.cli'
func tracer() tracing.Trace {
	return tracing.Select("dunit.cli")
}
