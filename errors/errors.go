package errors

import (
	"fmt"
	"strings"
)

// Op indicates which runtime operation the error occurred in
type Op string

const (
	OpIndex   Op = "index"   // element access
	OpSlice   Op = "slice"   // sub-range extraction
	OpPattern Op = "pattern" // pattern compilation
	OpMatch   Op = "match"   // pattern matching
	OpQueue   Op = "queue"   // priority queue operations
	OpIO      Op = "io"      // host file and process I/O
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidPattern Kind = "invalid_pattern"
	KindInvalidHandle  Kind = "invalid_handle"
	KindInvalidInput   Kind = "invalid_input"
	KindClosed         Kind = "closed"
	KindIOFailure      Kind = "io_failure"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds reports an index outside the valid range after normalization.
// The index carried is the already-normalized value, so callers see what was
// actually looked up rather than what they passed.
func OutOfBounds(op Op, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// InvalidPattern reports a pattern that failed to compile, carrying the
// offending pattern string and the compiler diagnostic.
func InvalidPattern(pattern string, cause error) *Error {
	return &Error{
		Op:     OpPattern,
		Kind:   KindInvalidPattern,
		Detail: fmt.Sprintf("invalid pattern %q", pattern),
		Value:  pattern,
		Cause:  cause,
	}
}

// InvalidHandle reports a zero, unknown, or released queue handle.
func InvalidHandle(op Op, handle uint64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("handle %#x is not a live queue", handle),
		Value:  handle,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed reports an operation against a closed registry or context.
func Closed(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// IO wraps a host I/O failure with the path being accessed.
func IO(path string, cause error) *Error {
	return &Error{
		Op:     OpIO,
		Kind:   KindIOFailure,
		Detail: path,
		Value:  path,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
