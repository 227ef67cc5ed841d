package eval

import (
	"github.com/google/uuid"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

// Trace records one materialization run for diagnostics.
type Trace struct {
	// Token uniquely identifies the run. UUIDv7, so tokens sort by
	// creation time.
	Token string `json:"token"`

	// Operands is the number of operand references visited.
	Operands int `json:"operands"`

	// Result is the materialized value.
	Result Result `json:"result"`
}

// NewRunToken generates a time-ordered unique token for one run.
func NewRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Run materializes o against b and wraps the outcome in a Trace.
func Run(o expr.Operand, b Binding) (*Trace, error) {
	result, err := Eval(o, b)
	if err != nil {
		return nil, err
	}
	return &Trace{
		Token:    NewRunToken(),
		Operands: expr.Count(o),
		Result:   result,
	}, nil
}
