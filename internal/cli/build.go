package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghislainb/fieldexpr/internal/canon"
	"github.com/ghislainb/fieldexpr/internal/expr"
	"github.com/ghislainb/fieldexpr/internal/parse"
)

// BuildResult is the payload printed by the build command.
type BuildResult struct {
	Source string `json:"source" yaml:"source"`
	Expr   string `json:"expr" yaml:"expr"`
	Hash   string `json:"hash" yaml:"hash"`
	Tree   any    `json:"tree" yaml:"tree"`

	rendered string
}

// Text implements the text rendering used by OutputFormatter.
func (r *BuildResult) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "expr: %s\n", r.Expr)
	fmt.Fprintf(&sb, "hash: %s\n", r.Hash)
	sb.WriteString("tree:\n")
	for _, line := range strings.Split(strings.TrimRight(r.rendered, "\n"), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <expression>",
		Short: "Parse an expression and print the constructed tree",
		Long: `Parse an infix expression, run it through the construction rules,
and print the resulting tree with its content hash.

Sentinel algebra is applied during construction: terms known to vanish
are eliminated from the tree, and dividing by null fails here, before
any evaluation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runBuild(opts *RootOptions, source string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	o, err := parse.Expression(source)
	if err != nil {
		return WrapExitError(ExitFailure, "build failed", err)
	}
	formatter.VerboseLog("constructed %d operand(s)", expr.Count(o))

	hash, err := canon.TreeHash(o)
	if err != nil {
		return WrapExitError(ExitFailure, "hash failed", err)
	}

	result := &BuildResult{
		Source:   source,
		Expr:     expr.OperandString(o),
		Hash:     hash,
		Tree:     dumpOperand(o),
		rendered: renderTree(o),
	}
	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}
