package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"substation/internal/logging"
	"substation/internal/notifications"
	"substation/internal/probing"
	"substation/internal/queue"
	"substation/internal/styling"
	"substation/internal/workflow"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var watchFlag bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process queued subtitle files",
		Long: `Process the queue until no startable item remains. With --watch the
process stays up and polls the queue for new items until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			lock, err := workflow.AcquireLock(cfg)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				OutputPaths: []string{
					"stdout",
					filepath.Join(cfg.Paths.LogDir, "substation.log"),
				},
			})
			if err != nil {
				return err
			}

			store, err := queue.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			manager := workflow.NewManager(cfg, store, logger, notifications.NewService(cfg), workflow.StageSet{
				Prober: probing.NewStage(cfg, store, logger),
				Styler: styling.NewStage(cfg, store, logger),
			})

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watchFlag {
				logger.Info("watching queue",
					logging.Int("poll_interval_seconds", cfg.Workflow.QueuePollInterval),
				)
				return manager.Watch(runCtx)
			}

			processed, failed, err := manager.RunOnce(runCtx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d item(s), %d failed.\n", processed, failed)
			if failed > 0 {
				return fmt.Errorf("%d item(s) failed; see 'substation queue list --status failed'", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watchFlag, "watch", false, "Keep running and poll the queue for new items")

	return cmd
}
