// Package errors defines the error taxonomy of the conversion pipeline.
//
// Every failure is terminal for the current invocation: dispatch and
// extraction raise unsupported-format errors, parser collaborators raise
// their own errors which are propagated without semantic rewrapping, and the
// write layer surfaces filesystem errors the same way. Errors carry a stable
// code so callers can match with errors.Is against the exported sentinels
// while messages stay free to carry detail.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of conversion failure.
type Code string

const (
	// CodeUnsupportedFormat marks a file extension outside .mpt/.mpr/.mps.
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	// CodeParserUnavailable marks a recognized format with no parser wired in.
	CodeParserUnavailable Code = "PARSER_UNAVAILABLE"
	// CodeInvalidResult marks a parser result that failed boundary validation.
	CodeInvalidResult Code = "INVALID_RESULT"
	// CodeWriteFailed wraps a filesystem error from the write layer.
	CodeWriteFailed Code = "WRITE_FAILED"
)

// ConversionError is a coded error value. Two ConversionErrors match under
// errors.Is when their codes are equal, so the exported sentinels below work
// as match targets for dynamically constructed errors.
type ConversionError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is matches any ConversionError with the same code.
func (e *ConversionError) Is(target error) bool {
	var other *ConversionError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Sentinels for errors.Is matching.
var (
	ErrUnsupportedFormat = New(CodeUnsupportedFormat, "unsupported file format")
	ErrParserUnavailable = New(CodeParserUnavailable, "no parser available")
	ErrInvalidResult     = New(CodeInvalidResult, "invalid parse result")
	ErrWriteFailed       = New(CodeWriteFailed, "write failed")
)

// New creates a ConversionError with the given code and message.
func New(code Code, message string) *ConversionError {
	return &ConversionError{Code: code, Message: message}
}

// Wrap creates a ConversionError around an underlying cause. The cause stays
// reachable through errors.Is/As so collaborator and filesystem errors are
// propagated rather than replaced.
func Wrap(code Code, message string, err error) *ConversionError {
	return &ConversionError{Code: code, Message: message, Err: err}
}

// UnsupportedFormat creates an unsupported-format error for the given
// extension.
func UnsupportedFormat(ext string) *ConversionError {
	if ext == "" {
		return New(CodeUnsupportedFormat, "unsupported file format: missing extension")
	}
	return New(CodeUnsupportedFormat, fmt.Sprintf("unsupported file format: %s", ext))
}

// ParserUnavailable creates an error for a recognized format whose parser was
// never wired into the running process.
func ParserUnavailable(format string) *ConversionError {
	return New(CodeParserUnavailable, fmt.Sprintf("no parser available for %s files", format))
}

// InvalidResult creates a boundary-validation error for a parser result.
func InvalidResult(format string, err error) *ConversionError {
	return Wrap(CodeInvalidResult, fmt.Sprintf("invalid %s parse result", format), err)
}

// WriteFailed wraps a filesystem error from the write layer.
func WriteFailed(path string, err error) *ConversionError {
	return Wrap(CodeWriteFailed, fmt.Sprintf("failed to write %s", path), err)
}
