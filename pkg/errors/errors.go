package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCancelled     ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Plugin errors
	ErrPluginNotFound ErrorCode = "PLUGIN_NOT_FOUND"
	ErrPluginInvalid  ErrorCode = "PLUGIN_INVALID"

	// Pipeline stage errors
	ErrParseHTML        ErrorCode = "PARSE_HTML"
	ErrParseMarkdown    ErrorCode = "PARSE_MARKDOWN"
	ErrParseFrontMatter ErrorCode = "PARSE_FRONTMATTER"
	ErrRenderHTML       ErrorCode = "RENDER_HTML"
	ErrRenderXHTML      ErrorCode = "RENDER_XHTML"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// SpanwrapError represents a structured error with code and details
type SpanwrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SpanwrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SpanwrapError) Unwrap() error {
	return e.Wrapped
}

// Is matches another SpanwrapError by code
func (e *SpanwrapError) Is(target error) bool {
	var targetErr *SpanwrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SpanwrapError with the given code and message
func New(code ErrorCode, message string) *SpanwrapError {
	return &SpanwrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SpanwrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SpanwrapError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a SpanwrapError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SpanwrapError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SpanwrapError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SpanwrapError) WithDetail(key string, value interface{}) *SpanwrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SpanwrapError) WithDetails(details map[string]interface{}) *SpanwrapError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var swErr *SpanwrapError
	if errors.As(err, &swErr) {
		return swErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SpanwrapError
func GetErrorCode(err error) ErrorCode {
	var swErr *SpanwrapError
	if errors.As(err, &swErr) {
		return swErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SpanwrapError
func GetErrorDetails(err error) map[string]interface{} {
	var swErr *SpanwrapError
	if errors.As(err, &swErr) {
		return swErr.Details
	}
	return nil
}
