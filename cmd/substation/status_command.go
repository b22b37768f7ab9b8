package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"substation/internal/config"
	"substation/internal/logging"
	"substation/internal/notifications"
	"substation/internal/probing"
	"substation/internal/queue"
	"substation/internal/styling"
	"substation/internal/workflow"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue counts and stage health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				manager := workflow.NewManager(cfg, store, logging.NewNop(), notifications.NewService(cfg), workflow.StageSet{
					Prober: probing.NewStage(cfg, store, logging.NewNop()),
					Styler: styling.NewStage(cfg, store, logging.NewNop()),
				})
				summary := manager.Status(cmd.Context())
				colorize := shouldColorize(cmd.OutOrStdout())

				queueRows := make([][]string, 0, len(summary.QueueStats))
				for _, status := range queue.AllStatuses() {
					count, ok := summary.QueueStats[status]
					if !ok {
						continue
					}
					queueRows = append(queueRows, []string{
						formatStatus(status, colorize),
						strconv.Itoa(count),
					})
				}
				if len(queueRows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), renderTable(
						[]string{"Status", "Count"},
						queueRows,
						[]columnAlignment{alignLeft, alignRight},
					))
				}

				names := make([]string, 0, len(summary.StageHealth))
				for name := range summary.StageHealth {
					names = append(names, name)
				}
				sort.Strings(names)
				healthRows := make([][]string, 0, len(names))
				for _, name := range names {
					health := summary.StageHealth[name]
					detail := health.Detail
					if detail == "" {
						detail = "-"
					}
					healthRows = append(healthRows, []string{
						name,
						formatHealthy(health.Ready, colorize),
						detail,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Stage", "Health", "Detail"},
					healthRows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))

				if summary.LastError != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Last error: %s\n", summary.LastError)
				}
				return nil
			})
		},
	}
}
