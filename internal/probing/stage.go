package probing

import (
	"context"
	"log/slog"
	"os/exec"

	"substation/internal/config"
	"substation/internal/logging"
	"substation/internal/probe"
	"substation/internal/queue"
	"substation/internal/services"
	"substation/internal/stage"
)

// Stage resolves the frame geometry each item's margins are scaled from.
// Items with a video file are probed with ffprobe; items without one use
// the configured fallback geometry.
type Stage struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewStage constructs the probing stage.
func NewStage(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Stage {
	return &Stage{cfg: cfg, store: store, logger: logging.WithComponent(logger, "probing")}
}

// Prepare primes queue progress fields before executing the stage.
func (s *Stage) Prepare(ctx context.Context, item *queue.Item) error {
	if s == nil || s.cfg == nil {
		return services.Wrap(services.ErrConfiguration, "probing", "prepare", "Probing stage is not configured", nil)
	}
	item.SetProgress("Probing", "Reading video geometry", 0)
	return s.store.Update(ctx, item)
}

// Execute resolves and persists the item's target geometry.
func (s *Stage) Execute(ctx context.Context, item *queue.Item) error {
	if item == nil {
		return services.Wrap(services.ErrValidation, "probing", "execute", "Queue item is nil", nil)
	}

	if item.VideoPath == "" {
		item.Width = s.cfg.Video.Width
		item.Height = s.cfg.Video.Height
		s.logger.Debug("no video file; using configured geometry",
			logging.Int64(logging.FieldItemID, item.ID),
			logging.Int("width", item.Width),
			logging.Int("height", item.Height),
		)
		item.SetProgress("Probing", "Using configured geometry", 100)
		return nil
	}

	geometry, err := probe.Inspect(ctx, s.cfg.FFprobeBinary(), item.VideoPath)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "probing", "inspect", "ffprobe failed for "+item.VideoPath, err)
	}
	item.Width = geometry.Width
	item.Height = geometry.Height
	s.logger.Info("probed video geometry",
		logging.Int64(logging.FieldItemID, item.ID),
		logging.String("video", item.VideoPath),
		logging.Int("width", item.Width),
		logging.Int("height", item.Height),
	)
	item.SetProgress("Probing", "Geometry resolved", 100)
	return nil
}

// HealthCheck reports whether ffprobe is available.
func (s *Stage) HealthCheck(ctx context.Context) stage.Health {
	if s == nil || s.cfg == nil {
		return stage.Unhealthy("probing", "stage not configured")
	}
	if _, err := exec.LookPath(s.cfg.FFprobeBinary()); err != nil {
		return stage.Unhealthy("probing", "ffprobe not found in PATH; items without video files still work")
	}
	return stage.Healthy("probing")
}
