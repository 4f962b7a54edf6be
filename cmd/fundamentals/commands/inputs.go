package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/fundamentals/internal/financials"
)

func newInputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inputs",
		Short: "List the accepted figures with their flag and file keys",
		Long: `List every figure the command accepts. KEY is both the long flag name
and the key used in --input files; series take a list in files and a
repeated flag on the command line.

Example:
  fundamentals inputs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			widths := []int{20, 5, 8}

			PrintTableHeader(w, []string{"KEY", "FLAG", "TYPE", "DESCRIPTION"}, append(widths, 11))
			for _, q := range financials.Quantities {
				short := ""
				if q.Short != "" {
					short = "-" + q.Short
				}
				PrintTableRow(w, []string{q.Key, short, q.Kind.String(), q.Usage}, widths)
			}
			return nil
		},
	}
}
