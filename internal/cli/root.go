// Package cli wires the predicate engine into a cobra command tree.
//
// The tree is generated from the registry: one subcommand per category,
// one sub-subcommand per predicate, so help text, arity checking, and
// dispatch all share the single static lookup table. The boolean result
// travels exclusively through the exit code; stdout stays clean and
// diagnostics go to stderr.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/is/internal/checks"
	"github.com/roach88/is/internal/predicate"
)

// Version is the binary version, overridable at link time.
var Version = "0.1.0"

// errPredicateFalse is the silent false result: exit code 1, no output.
var errPredicateFalse = NewExitError(ExitFalse, "")

// RootOptions holds global flags shared by all predicate commands.
type RootOptions struct {
	Verbose bool
	Timeout time.Duration // Override for blocking (net) predicates; zero keeps per-predicate defaults
}

// NewRootCommand creates the root command with every category and
// predicate registered.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	registry := checks.NewRegistry()

	cmd := &cobra.Command{
		Use:   "is",
		Short: "A descriptive replacement for the test command",
		Long: `is answers yes/no questions about files, strings, numbers, semantic
versions, environment variables, and system facts.

The answer travels through the exit status so it composes with shell
conditionals: 0 means true, 1 means false, 2 means the invocation itself
was malformed.

Examples:
  is file exists ~/.ssh/config && echo "have ssh config"
  is string matches-regex "$input" '^[0-9]+$' || die "not a number"
  is semver gt "$(tool --version)" 2.1.0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
		},
		// Reached only with no subcommand at all. Category and predicate
		// are required; their absence is a usage error, not a true result.
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewExitError(ExitUsage, "expected <category> <predicate> <operands>; run 'is list' for the full set")
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log evaluation details to stderr")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "override the timeout for network probes")

	for _, cat := range registry.Categories() {
		cmd.AddCommand(newCategoryCommand(opts, registry, cat))
	}

	cmd.AddCommand(newListCommand(registry))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "is version %s\n", Version)
		},
	})

	return cmd
}

// newCategoryCommand builds the subcommand for one category with a
// predicate sub-subcommand per spec.
func newCategoryCommand(opts *RootOptions, registry *predicate.Registry, cat *predicate.Category) *cobra.Command {
	cmd := &cobra.Command{
		Use:           cat.Name,
		Short:         cat.Help,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Reached only when no predicate subcommand matched; Lookup
		// produces the usage error naming the valid set.
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			_, err := registry.Lookup(cat.Name, name)
			if err != nil {
				return WrapExitError(ExitUsage, err)
			}
			return nil
		},
	}

	for _, spec := range cat.Specs() {
		spec := spec
		cmd.AddCommand(&cobra.Command{
			Use:           spec.Usage(),
			Short:         spec.Help,
			Args:          cobra.ExactArgs(spec.Arity()),
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPredicate(cmd.Context(), opts, registry, spec, args)
			},
		})
	}

	return cmd
}

// runPredicate dispatches one evaluation and maps its outcome onto the
// exit-code contract: true is a nil error, false is a silent ExitError,
// and every fault becomes an ExitUsage error for Execute to report.
func runPredicate(ctx context.Context, opts *RootOptions, registry *predicate.Registry, spec *predicate.Spec, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 && spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ok, err := registry.Dispatch(ctx, spec.Category, spec.Name, args)
	if err != nil {
		slog.Debug("evaluation failed",
			"category", spec.Category,
			"predicate", spec.Name,
			"error", err)
		return WrapExitError(ExitUsage, err)
	}

	slog.Debug("predicate evaluated",
		"category", spec.Category,
		"predicate", spec.Name,
		"operands", args,
		"result", ok)

	if !ok {
		return errPredicateFalse
	}
	return nil
}

// configureLogging installs a text slog handler writing to stderr.
// Without --verbose only warnings surface, keeping evaluation silent.
func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Execute runs the CLI and returns the process exit code. A false
// predicate exits 1 without output; every other failure is reported on
// stderr before exiting with its code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// A nil slice would make cobra fall back to os.Args.
		args = []string{}
	}
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitTrue
	}

	if errors.Is(err, errPredicateFalse) {
		return ExitFalse
	}

	fmt.Fprintf(stderr, "is: %v\n", err)
	return GetExitCode(err)
}

// Main is the entry point used by cmd/is. Split from main() so tests can
// drive the full binary surface in-process.
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
