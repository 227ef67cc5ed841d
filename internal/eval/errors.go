package eval

import (
	"errors"
	"fmt"
)

// EvalError represents an error detected while materializing a tree.
type EvalError struct {
	// Code identifies the error category.
	Code EvalErrorCode

	// Message is a human-readable description.
	Message string

	// Op identifies the operator or symbol involved, when known.
	Op string
}

// EvalErrorCode categorizes evaluation errors.
type EvalErrorCode string

const (
	// ErrCodeUnboundSymbol indicates a symbol leaf with no binding.
	ErrCodeUnboundSymbol EvalErrorCode = "UNBOUND_SYMBOL"

	// ErrCodeUnsupportedLeaf indicates a leaf payload type this
	// materializer cannot interpret.
	ErrCodeUnsupportedLeaf EvalErrorCode = "UNSUPPORTED_LEAF"

	// ErrCodeShapeMismatch indicates operands whose value shapes cannot
	// be combined by the operator.
	ErrCodeShapeMismatch EvalErrorCode = "SHAPE_MISMATCH"

	// ErrCodeBadFunction indicates a compose node whose captured function
	// is not a func(...float64) float64.
	ErrCodeBadFunction EvalErrorCode = "BAD_FUNCTION"

	// ErrCodeUnknownOperator indicates a node function name outside the
	// operator table.
	ErrCodeUnknownOperator EvalErrorCode = "UNKNOWN_OPERATOR"
)

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnboundSymbol returns true if the error is an unbound-symbol error.
// Uses errors.As to handle wrapped errors.
func IsUnboundSymbol(err error) bool {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeUnboundSymbol
	}
	return false
}

func newError(code EvalErrorCode, op, format string, args ...any) *EvalError {
	return &EvalError{Code: code, Message: fmt.Sprintf(format, args...), Op: op}
}
