package zapadapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

func TestZapTracerLevels(t *testing.T) {
	var buf bytes.Buffer
	trace := New()
	trace.SetOutput(&buf)
	if trace.GetTraceLevel() != tracing.LevelError {
		t.Errorf("expected initial trace level to be Error, is %s", trace.GetTraceLevel())
	}
	trace.Infof("invisible")
	trace.SetTraceLevel(tracing.LevelInfo)
	trace.Infof("hello %d", 1)
	trace.Debugf("invisible")
	out := buf.String()
	if strings.Contains(out, "invisible") {
		t.Errorf("expected messages above trace level to be suppressed, have %q", out)
	}
	if !strings.Contains(out, "hello 1") {
		t.Errorf("expected info message in output, have %q", out)
	}
}

func TestZapTracerFields(t *testing.T) {
	var buf bytes.Buffer
	trace := New()
	trace.SetOutput(&buf)
	trace.SetTraceLevel(tracing.LevelDebug)
	trace.P("selector", "body").P("pos", 17).Debugf("dropped rule")
	out := buf.String()
	for _, s := range []string{"dropped rule", "selector", "body", "17"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in output, have %q", s, out)
		}
	}
	if trace.P("k", "v").GetTraceLevel() != tracing.LevelDebug {
		t.Errorf("expected field tracer to report level of its tracer")
	}
}
