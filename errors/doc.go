// Package errors provides structured error types for the homun-std runtime.
//
// Errors are categorized by Op (which runtime operation failed) and Kind
// (error category). The Error type includes the offending value, a detail
// message, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpQueue, errors.KindInvalidHandle).
//		Value(handle).
//		Detail("queue released before use").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.OpIndex, 7, 5)
//	err := errors.InvalidPattern("[unclosed", cause)
//
// Boundary violations that indicate a caller bug (bad index, malformed
// pattern, stale handle) are always surfaced as these typed errors.
// Expected-but-negative outcomes (no match, empty pop, empty slice) are
// never errors; they are regular return values on the operations that
// produce them.
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
