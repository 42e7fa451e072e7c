// Package genlog wraps zap for construction-time diagnostics: the
// per-stage trace a caller can turn on while building an automaton,
// mirroring the volume of std::cout tracing in
// original_source/src/dfa.cpp's SubsetConstruction::convert without
// tying it to stdout.
package genlog

import "go.uber.org/zap"

// Logger is the structured logger every construction-time component
// receives. Noop and New are the constructors; a nil *Logger or a zero
// Logger discards everything, like Noop.
type Logger struct {
	z *zap.Logger
}

// Noop returns a Logger that discards everything — the default when a
// caller doesn't want construction diagnostics.
func Noop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// New builds a development-mode logger: human-readable output with
// stack traces on Warn and above, matching the pack's convention for
// CLI-facing structured logging (pingcap-tidb's domain.go wires zap the
// same way for its own construction-time diagnostics).
func New() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Stage logs the start or completion of one pipeline stage.
func (l *Logger) Stage(msg string, fields ...zap.Field) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info(msg, fields...)
}

// Sync flushes any buffered log entries. Safe to call on a nil Logger.
func (l *Logger) Sync() error {
	if l == nil || l.z == nil {
		return nil
	}
	return l.z.Sync()
}
