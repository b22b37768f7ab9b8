package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"substation/internal/deps"
)

func newDepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "deps",
		Short:       "Check external binary dependencies",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := deps.CheckBinaries(deps.Default())
			colorize := shouldColorize(cmd.OutOrStdout())

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				requirement := "required"
				if status.Optional {
					requirement = "optional"
				}
				if !status.Available {
					if !status.Optional {
						missing++
					}
				}
				rows = append(rows, []string{
					status.Name,
					requirement,
					formatHealthy(status.Available, colorize),
					detail,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Dependency", "Requirement", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if missing > 0 {
				return fmt.Errorf("%d required dependency(ies) missing", missing)
			}
			return nil
		},
	}
}
