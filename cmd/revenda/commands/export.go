package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/revenda/internal/inventory"
)

func exportCmd(opts *options) *cobra.Command {
	var (
		format string
		status string
		query  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the seeded inventory to CSV or PDF without opening the UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := inventory.Format(strings.ToLower(format))
			if f != inventory.FormatCSV && f != inventory.FormatPDF {
				return fmt.Errorf("unknown format %q (want csv or pdf)", format)
			}
			sf := inventory.StatusFilter(strings.ToLower(status))
			if !slices.Contains(inventory.FilterChoices(), sf) {
				return fmt.Errorf("unknown status %q", status)
			}

			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			art, err := e.sess.Export(cmd.Context(), f, inventory.Filter{Status: sf, Query: query})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d vehicles, %d bytes)\n", art.Path, art.Rows, art.SizeBytes)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv or pdf")
	cmd.Flags().StringVar(&status, "status", string(inventory.FilterAll), "todos, disponivel, negociacao or vendido")
	cmd.Flags().StringVar(&query, "query", "", "case-insensitive model or plate search")
	return cmd
}
