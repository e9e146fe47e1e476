// Package errors provides structured error handling for flow layouts.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a caller broke a layout precondition
	// (negative sizes, negative spacing).
	KindContract
	// KindConfig indicates a configuration or scene file could not be used.
	KindConfig
	// KindMeasure indicates a child reported an unusable measurement.
	KindMeasure
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindConfig:
		return "config"
	case KindMeasure:
		return "measure"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FlowError represents a structured error raised around a layout pass.
type FlowError struct {
	// Op is the operation that failed (e.g., "flow.Pack").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FlowError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// ContractError reports a layout input that violates a precondition.
type ContractError struct {
	// Op is the operation whose precondition failed.
	Op string
	// Field names the offending input (e.g., "children[2].MeasuredWidth").
	Field string
	// Value is the rejected value.
	Value int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s must be non-negative, got %d", e.Op, e.Field, e.Value)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.pack").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by flow.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FlowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
