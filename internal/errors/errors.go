package errors

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
)

// Code categorizes an error so callers can branch without string matching
type Code string

const (
	CodeUnknown            Code = "unknown"
	CodeInvalidArgument    Code = "invalid_argument" // malformed input: blank ids, bad slots, unknown weather names
	CodeNotFound           Code = "not_found"        // species, move, type or battle id did not resolve
	CodeAlreadyExists      Code = "already_exists"   // duplicate catalog entry or battle id
	CodeFailedPrecondition Code = "failed_precondition"
	CodeInternal           Code = "internal"
)

// Error is a coded application error. Meta carries structured context such
// as the battle id or move slot for logging.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// Wrap adds context to err. The code and a copy of the metadata of the
// innermost *Error carry over; plain errors become CodeUnknown. Wrap(nil)
// is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if appErr, ok := as(err); ok {
		wrapped.Code = appErr.Code
		wrapped.Meta = maps.Clone(appErr.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap that replaces the code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func as(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// GetCode returns the code of the outermost *Error in err's chain
func GetCode(err error) Code {
	if appErr, ok := as(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	if appErr, ok := as(err); ok {
		return appErr.Meta
	}
	return nil
}

// Is reports whether err carries code
func Is(err error, code Code) bool {
	_, ok := as(err)
	return ok && GetCode(err) == code
}

func IsNotFound(err error) bool           { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return Is(err, CodeAlreadyExists) }
func IsFailedPrecondition(err error) bool { return Is(err, CodeFailedPrecondition) }

// HTTPStatus maps the error code onto the closest HTTP status
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
