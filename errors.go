package mdffi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the category of an mdffi error.
type ErrorKind string

const (
	ErrorKindUnknown       ErrorKind = "unknown"
	ErrorKindIO            ErrorKind = "io"
	ErrorKindValidation    ErrorKind = "validation"
	ErrorKindEncoding      ErrorKind = "encoding"
	ErrorKindParsing       ErrorKind = "parsing"
	ErrorKindSerialization ErrorKind = "serialization"
	ErrorKindRender        ErrorKind = "render"
)

// MdffiError is implemented by all custom error types returned by this package.
type MdffiError interface {
	error
	Kind() ErrorKind
}

type baseError struct {
	kind    ErrorKind
	message string
	cause   error
}

func (e *baseError) Error() string {
	return e.message
}

func (e *baseError) Kind() ErrorKind {
	return e.kind
}

func (e *baseError) Unwrap() error {
	return e.cause
}

type ValidationError struct {
	baseError
}

// EncodingError reports input that is not valid UTF-8.
type EncodingError struct {
	baseError
	// Offset is the index of the first byte that does not start a valid sequence.
	Offset int
}

type ParsingError struct {
	baseError
}

type SerializationError struct {
	baseError
}

type IOError struct {
	baseError
}

// RenderError wraps a failure inside the Markdown engine.
type RenderError struct {
	baseError
}

func makeBaseError(kind ErrorKind, message string, cause error) baseError {
	return baseError{
		kind:    kind,
		message: formatErrorMessageWithCause(message, cause),
		cause:   cause,
	}
}

func newValidationError(message string, cause error) *ValidationError {
	return &ValidationError{baseError: makeBaseError(ErrorKindValidation, message, cause)}
}

func newEncodingError(offset int) *EncodingError {
	return &EncodingError{
		baseError: makeBaseError(ErrorKindEncoding, fmt.Sprintf("invalid UTF-8 at byte %d", offset), nil),
		Offset:    offset,
	}
}

func newParsingError(message string, cause error) *ParsingError {
	return &ParsingError{baseError: makeBaseError(ErrorKindParsing, message, cause)}
}

func newSerializationError(message string, cause error) *SerializationError {
	return &SerializationError{baseError: makeBaseError(ErrorKindSerialization, message, cause)}
}

func newIOError(message string, cause error) *IOError {
	return &IOError{baseError: makeBaseError(ErrorKindIO, message, cause)}
}

func newRenderError(message string, cause error) *RenderError {
	return &RenderError{baseError: makeBaseError(ErrorKindRender, message, cause)}
}

// KindOf returns the kind of err, or ErrorKindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var e MdffiError
	if errors.As(err, &e) {
		return e.Kind()
	}
	return ErrorKindUnknown
}

func formatErrorMessageWithCause(message string, cause error) string {
	msg := formatErrorMessage(message)
	if cause != nil {
		return fmt.Sprintf("%s: %v", msg, cause)
	}
	return msg
}

func formatErrorMessage(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		trimmed = "unknown error"
	}
	if strings.HasPrefix(strings.ToLower(trimmed), "mdffi:") {
		return trimmed
	}
	return "mdffi: " + trimmed
}
