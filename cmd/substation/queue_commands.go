package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/config"
	"substation/internal/queue"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and manage the conversion queue",
	}

	cmd.AddCommand(newQueueAddCommand(ctx))
	cmd.AddCommand(newQueueListCommand(ctx))
	cmd.AddCommand(newQueueRetryCommand(ctx))
	cmd.AddCommand(newQueueResetStuckCommand(ctx))
	cmd.AddCommand(newQueueRemoveCommand(ctx))
	cmd.AddCommand(newQueueClearCommand(ctx))

	return cmd
}

func newQueueAddCommand(ctx *commandContext) *cobra.Command {
	var videoFlag string

	cmd := &cobra.Command{
		Use:   "add <subtitle-file>...",
		Short: "Add subtitle files to the queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if videoFlag != "" && len(args) > 1 {
				return fmt.Errorf("--video applies to a single subtitle file, got %d", len(args))
			}
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				for _, arg := range args {
					sourcePath, err := config.ExpandPath(arg)
					if err != nil {
						return err
					}
					videoPath := videoFlag
					if videoPath != "" {
						if videoPath, err = config.ExpandPath(videoPath); err != nil {
							return err
						}
					}

					existing, err := store.FindBySourcePath(cmd.Context(), sourcePath)
					if err != nil {
						return err
					}
					if existing != nil && existing.Status != queue.StatusCompleted && existing.Status != queue.StatusFailed {
						fmt.Fprintf(cmd.OutOrStdout(), "Already queued as item %d: %s\n", existing.ID, sourcePath)
						continue
					}

					item, err := store.Add(cmd.Context(), sourcePath, videoPath)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Added item %d: %s\n", item.ID, sourcePath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&videoFlag, "video", "", "Video file whose geometry drives margin scaling")

	return cmd
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queue items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var statuses []queue.Status
			if statusFlag != "" {
				for _, raw := range strings.Split(statusFlag, ",") {
					status, ok := queue.ParseStatus(raw)
					if !ok {
						return fmt.Errorf("unknown status %q (known: %s)", raw, joinStatuses(queue.AllStatuses()))
					}
					statuses = append(statuses, status)
				}
			}

			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				items, err := store.List(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty.")
					return nil
				}

				colorize := shouldColorize(cmd.OutOrStdout())
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, []string{
						strconv.FormatInt(item.ID, 10),
						formatStatus(item.Status, colorize),
						itemLabel(item),
						formatGeometry(item),
						formatProgress(item),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Status", "Subtitle", "Geometry", "Progress"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Comma-separated status filter (e.g. pending,failed)")

	return cmd
}

func newQueueRetryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "retry",
		Short: "Reset failed items to pending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				count, err := store.RetryFailed(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset %d failed item(s) to pending.\n", count)
				return nil
			})
		},
	}
}

func newQueueResetStuckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-stuck",
		Short: "Roll in-flight items back so their stage re-runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				count, err := store.ResetStuck(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset %d stuck item(s).\n", count)
				return nil
			})
		},
	}
}

func newQueueRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a single item from the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				removed, err := store.Remove(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("no item with id %d", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed item %d.\n", id)
				return nil
			})
		},
	}
}

func newQueueClearCommand(ctx *commandContext) *cobra.Command {
	var (
		completedFlag bool
		failedFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove items from the queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				var (
					count int64
					err   error
					label string
				)
				switch {
				case completedFlag && failedFlag:
					return fmt.Errorf("use at most one of --completed and --failed")
				case completedFlag:
					count, err = store.ClearCompleted(cmd.Context())
					label = "completed "
				case failedFlag:
					count, err = store.ClearFailed(cmd.Context())
					label = "failed "
				default:
					count, err = store.Clear(cmd.Context())
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %sitem(s).\n", count, label)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&completedFlag, "completed", false, "Remove only completed items")
	cmd.Flags().BoolVar(&failedFlag, "failed", false, "Remove only failed items")

	return cmd
}

func itemLabel(item *queue.Item) string {
	if item.Title != "" {
		return item.Title
	}
	return item.SourcePath
}

func formatGeometry(item *queue.Item) string {
	if item.Width <= 0 || item.Height <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d", item.Width, item.Height)
}

func formatProgress(item *queue.Item) string {
	if item.Status == queue.StatusFailed && item.ErrorMessage != "" {
		return item.ErrorMessage
	}
	if item.ProgressStage == "" {
		return "-"
	}
	if item.ProgressMessage == "" {
		return item.ProgressStage
	}
	return fmt.Sprintf("%s: %s", item.ProgressStage, item.ProgressMessage)
}

func joinStatuses(statuses []queue.Status) string {
	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, string(status))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
