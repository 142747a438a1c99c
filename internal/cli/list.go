package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/is/internal/predicate"
)

// newListCommand creates the list command, which enumerates every
// predicate as "category predicate <operands>" in registration order.
// The output is deterministic and golden-tested.
func newListCommand(registry *predicate.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every category and predicate",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writeList(cmd.OutOrStdout(), registry)
		},
	}
}

// writeList renders the predicate catalog, one line per predicate.
func writeList(w io.Writer, registry *predicate.Registry) {
	for _, cat := range registry.Categories() {
		for _, spec := range cat.Specs() {
			fmt.Fprintf(w, "%s %s\n", cat.Name, spec.Usage())
		}
	}
}
