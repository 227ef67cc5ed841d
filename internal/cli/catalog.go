package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghislainb/fieldexpr/internal/expr"
	"github.com/ghislainb/fieldexpr/internal/parse"
	"github.com/ghislainb/fieldexpr/internal/store"
)

// CatalogOptions holds flags shared by the save and list commands.
type CatalogOptions struct {
	*RootOptions
	DBPath string
}

// SaveResult is the payload printed by the save command.
type SaveResult struct {
	Source string `json:"source" yaml:"source"`
	Expr   string `json:"expr" yaml:"expr"`
	Hash   string `json:"hash" yaml:"hash"`
}

// Text implements the text rendering used by OutputFormatter.
func (r *SaveResult) Text() string {
	return fmt.Sprintf("saved %s\nhash: %s\n", r.Expr, r.Hash)
}

// ListResult is the payload printed by the list command.
type ListResult struct {
	Expressions []store.Record `json:"expressions" yaml:"expressions"`
}

// Text implements the text rendering used by OutputFormatter.
func (r *ListResult) Text() string {
	if len(r.Expressions) == 0 {
		return "catalog is empty\n"
	}
	var sb strings.Builder
	for _, rec := range r.Expressions {
		fmt.Fprintf(&sb, "%d  %s  %s\n", rec.Seq, rec.Hash[:12], rec.Source)
	}
	return sb.String()
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "save <expression>",
		Short: "Build an expression and store it in the catalog",
		Long: `Build an expression tree and store its canonical form in the catalog,
keyed by content hash. Saving a structurally equal tree twice is a no-op.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "fieldexpr.db", "catalog database path")

	return cmd
}

func runSave(opts *CatalogOptions, source string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	o, err := parse.Expression(source)
	if err != nil {
		return WrapExitError(ExitFailure, "build failed", err)
	}

	catalog, err := store.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open catalog", err)
	}
	defer catalog.Close()

	hash, err := catalog.Put(cmd.Context(), source, o)
	if err != nil {
		return WrapExitError(ExitFailure, "save failed", err)
	}
	formatter.VerboseLog("stored under %s", hash)

	result := &SaveResult{Source: source, Expr: expr.OperandString(o), Hash: hash}
	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored expressions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "fieldexpr.db", "catalog database path")

	return cmd
}

func runList(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	catalog, err := store.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open catalog", err)
	}
	defer catalog.Close()

	records, err := catalog.List(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "list failed", err)
	}

	result := &ListResult{Expressions: records}
	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}
