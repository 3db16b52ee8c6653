/*
Package zapadapter implements tracing with Uber's zap logger.

Tracers write console-encoded lines, one per trace call. Field tracing with
P(…) is mapped to structured zap fields.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zapadapter

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a sugared zap logger.
type Tracer struct {
	log   *zap.SugaredLogger
	level zap.AtomicLevel
}

// New creates a new Tracer instance writing to os.Stderr. The initial
// trace level is LevelError.
func New() tracing.Trace {
	t := &Tracer{level: zap.NewAtomicLevelAt(zapcore.ErrorLevel)}
	t.SetOutput(os.Stderr)
	return t
}

// GetAdapter creates an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter() tracing.Adapter {
	return New
}

// P is part of interface Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &logentry{tracer: t, log: t.log.With(key, val)}
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	t.log.Debugf(s, args...)
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	t.log.Infof(s, args...)
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.log.Errorf(s, args...)
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	switch l {
	case tracing.LevelDebug:
		t.level.SetLevel(zapcore.DebugLevel)
	case tracing.LevelInfo:
		t.level.SetLevel(zapcore.InfoLevel)
	default:
		t.level.SetLevel(zapcore.ErrorLevel)
	}
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	switch t.level.Level() {
	case zapcore.DebugLevel:
		return tracing.LevelDebug
	case zapcore.InfoLevel:
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// SetOutput is part of interface Trace. Field tracers created by P(…)
// before the call keep writing to the previous output.
func (t *Tracer) SetOutput(writer io.Writer) {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(writer), t.level)
	t.log = zap.New(core).Sugar()
}

// ----------------------------------------------------------------------------

// logentry is a helper for field tracing
type logentry struct { // will have to implement tracing.Trace
	tracer *Tracer
	log    *zap.SugaredLogger
}

func (l *logentry) Debugf(s string, args ...interface{}) {
	l.log.Debugf(s, args...)
}

func (l *logentry) Infof(s string, args ...interface{}) {
	l.log.Infof(s, args...)
}

func (l *logentry) Errorf(s string, args ...interface{}) {
	l.log.Errorf(s, args...)
}

func (l *logentry) P(key string, val interface{}) tracing.Trace {
	return &logentry{tracer: l.tracer, log: l.log.With(key, val)}
}

func (l *logentry) SetTraceLevel(tracing.TraceLevel)  {}
func (l *logentry) GetTraceLevel() tracing.TraceLevel { return l.tracer.GetTraceLevel() }
func (l *logentry) SetOutput(writer io.Writer)        {}
