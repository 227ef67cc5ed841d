package expr

import (
	"errors"
	"fmt"
)

// BuildError represents an error detected while constructing a tree.
//
// Construction is total over {raw, Operand, sentinel} for every supported
// operator except one case: dividing a non-sentinel operand by the null
// sentinel, which is meaningless and must fail immediately rather than
// silently produce the sentinel or a value. The remaining codes cover the
// dynamic entry points (Apply) used by front ends.
type BuildError struct {
	// Code identifies the error category.
	Code BuildErrorCode

	// Message is a human-readable description.
	Message string

	// Op identifies the operator involved, when known.
	Op string
}

// BuildErrorCode categorizes construction errors.
type BuildErrorCode string

const (
	// ErrCodeDivisionByNull indicates a non-sentinel operand was divided
	// by the null sentinel.
	ErrCodeDivisionByNull BuildErrorCode = "DIVISION_BY_NULL"

	// ErrCodeUnknownOperator indicates an operator name outside the
	// supported table.
	ErrCodeUnknownOperator BuildErrorCode = "UNKNOWN_OPERATOR"

	// ErrCodeBadArity indicates an operand count that doesn't match the
	// operator's declared arity.
	ErrCodeBadArity BuildErrorCode = "BAD_ARITY"
)

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDivisionByNull returns true if the error is a division-by-sentinel
// error. Uses errors.As to handle wrapped errors.
func IsDivisionByNull(err error) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code == ErrCodeDivisionByNull
	}
	return false
}

// NewDivisionByNullError creates a BuildError for division by the
// sentinel.
func NewDivisionByNullError() *BuildError {
	return &BuildError{
		Code:    ErrCodeDivisionByNull,
		Message: "cannot divide a non-null operand by the null operand",
		Op:      OpDiv,
	}
}

// NewUnknownOperatorError creates a BuildError for an unrecognized
// operator name.
func NewUnknownOperatorError(name string) *BuildError {
	return &BuildError{
		Code:    ErrCodeUnknownOperator,
		Message: "operator is not in the supported set",
		Op:      name,
	}
}

// NewBadArityError creates a BuildError for a mismatched operand count.
func NewBadArityError(name string, want, got int) *BuildError {
	return &BuildError{
		Code:    ErrCodeBadArity,
		Message: fmt.Sprintf("operator takes %d operand(s), got %d", want, got),
		Op:      name,
	}
}
