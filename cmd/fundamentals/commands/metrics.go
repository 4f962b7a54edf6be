package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/fundamentals/internal/metrics"
)

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List every metric with its formulas in evaluation order",
		Long: `List every metric in report order with its candidate formulas.

Candidates are tried left to right. With --precedence last (the default)
the rightmost formula whose inputs are present wins; with first, the
leftmost one does.

Example:
  fundamentals metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			widths := []int{20, 10, 36}

			PrintTableHeader(w, []string{"METRIC", "KIND", "FORMULAS", "NEEDS"}, append(widths, 10))
			for _, def := range metrics.Definitions() {
				names := make([]string, 0, len(def.Candidates))
				for _, c := range def.Candidates {
					names = append(names, c.Name)
				}
				deps := make([]string, 0, len(def.DependsOn))
				for _, d := range def.DependsOn {
					deps = append(deps, string(d))
				}
				PrintTableRow(w, []string{
					string(def.Name),
					string(def.Kind),
					strings.Join(names, ", "),
					strings.Join(deps, ", "),
				}, widths)
			}
			return nil
		},
	}
}
