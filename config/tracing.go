package config

import (
	"fmt"

	"github.com/npillmayer/minilayout/config/zapadapter"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// TraceLevelPrefix is the configuration key prefix for trace levels, e.g.
// "tracelevel.minilayout.css".
const TraceLevelPrefix = "tracelevel"

// InitTracing registers the tracing adapters "go" and "zap" and configures
// the root tracer from conf. Key "tracing.adapter" selects the adapter.
// After the call, tracing.Select hands out tracers configured by trace2go.
func InitTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("zap", zapadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, TraceLevelPrefix, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("config: cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
