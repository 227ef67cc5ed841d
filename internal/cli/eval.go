package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghislainb/fieldexpr/internal/eval"
	"github.com/ghislainb/fieldexpr/internal/expr"
	"github.com/ghislainb/fieldexpr/internal/parse"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Bindings []string // name=value pairs
}

// EvalResult is the payload printed by the eval command.
type EvalResult struct {
	Source  string    `json:"source" yaml:"source"`
	Expr    string    `json:"expr" yaml:"expr"`
	Token   string    `json:"token" yaml:"token"`
	Skipped bool      `json:"skipped" yaml:"skipped"`
	Values  []float64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// Text implements the text rendering used by OutputFormatter.
func (r *EvalResult) Text() string {
	if r.Skipped {
		return fmt.Sprintf("expr: %s\nresult: null (no contribution)\n", r.Expr)
	}
	parts := make([]string, len(r.Values))
	for i, f := range r.Values {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("expr: %s\nresult: %s\n", r.Expr, strings.Join(parts, ", "))
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Build an expression and materialize it",
		Long: `Build an expression tree and materialize it with the reference
materializer. Symbols are resolved through --bind flags.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Bindings, "bind", "b", nil, "symbol binding name=value (repeatable)")

	return cmd
}

func parseBindings(pairs []string) (eval.Binding, error) {
	b := make(eval.Binding, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad binding %q: want name=value", pair)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("bad binding %q: %w", pair, err)
		}
		b[name] = f
	}
	return b, nil
}

func runEval(opts *EvalOptions, source string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	binding, err := parseBindings(opts.Bindings)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad --bind flag", err)
	}

	o, err := parse.Expression(source)
	if err != nil {
		return WrapExitError(ExitFailure, "build failed", err)
	}

	trace, err := eval.Run(o, binding)
	if err != nil {
		return WrapExitError(ExitFailure, "materialization failed", err)
	}
	formatter.VerboseLog("run %s visited %d operand(s)", trace.Token, trace.Operands)

	result := &EvalResult{
		Source:  source,
		Expr:    expr.OperandString(o),
		Token:   trace.Token,
		Skipped: trace.Result.Skip,
		Values:  trace.Result.Values,
	}
	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}
