// Package engineerr implements the engine's error taxonomy: four
// fatal usage/construction error kinds plus an aggregator for batch
// operations. Soft anomalies are logged through enginelog instead of
// surfacing here.
package engineerr

import (
	"fmt"
	"time"
)

// Code identifies a fatal error kind.
type Code string

const (
	CodeUnknownChannel Code = "UNKNOWN_CHANNEL"
	CodeDuplicateName  Code = "DUPLICATE_NAME"
	CodeKindMismatch   Code = "KIND_MISMATCH"
	CodeArity          Code = "ARITY"
)

// Severity tags an error's weight. The engine only ever raises
// Fatal; soft anomalies are logged at Warn through enginelog rather
// than returned as errors.
type Severity string

const (
	SeverityFatal Severity = "FATAL"
	SeverityWarn  Severity = "WARN"
)

// EngineError is the engine's fatal error type: usage errors and
// construction errors halt at the point of detection and are never
// recovered mid-tick.
type EngineError struct {
	Code      Code
	Severity  Severity
	Message   string
	Cause     error
	Timestamp time.Time
	Metadata  map[string]any
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (caused by: %v)", e.Code, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message)
}

func (e *EngineError) Unwrap() error { return e.Cause }

// New creates a fatal EngineError.
func New(code Code, message string) *EngineError {
	return &EngineError{Code: code, Severity: SeverityFatal, Message: message, Timestamp: time.Now(), Metadata: make(map[string]any)}
}

// Wrap wraps an existing error with engine taxonomy context.
func Wrap(code Code, message string, cause error) *EngineError {
	e := New(code, message)
	e.Cause = cause
	return e
}

// WithMetadata attaches a diagnostic key/value and returns the error
// for chaining.
func (e *EngineError) WithMetadata(key string, value any) *EngineError {
	e.Metadata[key] = value
	return e
}

// UnknownChannel builds the "unknown base provider channel" usage
// error.
func UnknownChannel(channel string) *EngineError {
	return New(CodeUnknownChannel, fmt.Sprintf("unknown base provider channel %q", channel)).WithMetadata("channel", channel)
}

// DuplicateName builds the "duplicate track / point-definition name"
// usage error.
func DuplicateName(kind, name string) *EngineError {
	return New(CodeDuplicateName, fmt.Sprintf("duplicate %s name %q", kind, name)).WithMetadata("name", name)
}

// KindMismatch builds the "wrong kind written into a typed slot"
// usage error. want/got are formatted with %v so both value.Kind and
// plain strings work without an import-cycle-inducing dependency.
func KindMismatch(target string, want, got any) *EngineError {
	return New(CodeKindMismatch, fmt.Sprintf("kind mismatch writing %s: want %v, got %v", target, want, got)).
		WithMetadata("target", target)
}

// Arity builds the "value provider output count doesn't match the
// kind's arity" construction error.
func Arity(kind any, want, got int) *EngineError {
	return New(CodeArity, fmt.Sprintf("arity mismatch for kind %v: want %d floats, got %d", kind, want, got)).
		WithMetadata("want", want).WithMetadata("got", got)
}

// ErrorAggregator collects multiple fatal errors, for batch operations
// that report every failure rather than stopping at the first.
// pointdef.Parse does not use it: it returns the first error it meets.
type ErrorAggregator struct {
	errs []*EngineError
}

func (a *ErrorAggregator) Add(err *EngineError) { a.errs = append(a.errs, err) }
func (a *ErrorAggregator) HasErrors() bool       { return len(a.errs) > 0 }
func (a *ErrorAggregator) Errors() []*EngineError { return a.errs }

func (a *ErrorAggregator) Error() string {
	if len(a.errs) == 0 {
		return ""
	}
	if len(a.errs) == 1 {
		return a.errs[0].Error()
	}
	return fmt.Sprintf("%d errors, first: %s", len(a.errs), a.errs[0].Error())
}
