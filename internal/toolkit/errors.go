package toolkit

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check.
var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrValidation  = errors.New("validation failed")
)

// ClientError is a fault in the caller's input: invalid JSON, a schema
// violation, or an argument shape the tool could not translate. Its message is
// safe to show verbatim. Err optionally wraps a sentinel (e.g. ErrValidation)
// for errors.Is/errors.As.
type ClientError struct {
	Reason string
	Err    error
}

func (e *ClientError) Error() string { return e.Reason }

// Unwrap supports errors.Is/errors.As on wrapped chains.
func (e *ClientError) Unwrap() error { return e.Err }

// SystemError is an internal failure (marshal failure, panic) rather than a
// problem with the caller's input or the downstream application.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string { return fmt.Sprintf("internal error: %v", e.Err) }

func (e *SystemError) Unwrap() error { return e.Err }

// IsClientError reports whether err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsSystemError reports whether err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// wrapJSONParseError returns a ClientError for JSON unmarshal failures so
// parse faults read the same everywhere in the pipeline.
func wrapJSONParseError(err error) error {
	return &ClientError{Reason: "json parse error: " + err.Error()}
}

// panicError wraps a recovered panic value for SystemError.
type panicError struct{ p any }

func (e *panicError) Error() string { return "panic: " + fmt.Sprint(e.p) }
