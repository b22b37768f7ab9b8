package styling

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"substation/internal/config"
	"substation/internal/logging"
	"substation/internal/normalize"
	"substation/internal/pipeline"
	"substation/internal/queue"
	"substation/internal/services"
	"substation/internal/stage"
	"substation/internal/style"
	"substation/internal/textutil"
	"substation/internal/timing"
)

// Stage runs the conversion pipeline for probed items.
type Stage struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewStage constructs the styling stage.
func NewStage(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Stage {
	return &Stage{cfg: cfg, store: store, logger: logging.WithComponent(logger, "styling")}
}

// Prepare primes queue progress fields before executing the stage.
func (s *Stage) Prepare(ctx context.Context, item *queue.Item) error {
	if s == nil || s.cfg == nil {
		return services.Wrap(services.ErrConfiguration, "styling", "prepare", "Styling stage is not configured", nil)
	}
	item.SetProgress("Styling", "Converting subtitles", 0)
	return s.store.Update(ctx, item)
}

// Execute converts the item's subtitle file and records the result.
func (s *Stage) Execute(ctx context.Context, item *queue.Item) error {
	if item == nil {
		return services.Wrap(services.ErrValidation, "styling", "execute", "Queue item is nil", nil)
	}
	if item.Width <= 0 || item.Height <= 0 {
		return services.Wrap(services.ErrValidation, "styling", "execute", "Item has no resolved geometry; rerun probing", nil)
	}

	alignment, err := style.ParseAlignment(s.cfg.Style.Alignment)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "styling", "execute", "Invalid alignment", err)
	}

	outputPath := item.OutputPath
	if outputPath == "" {
		base := textutil.SanitizeFileName(item.Title)
		if base == "" {
			base = textutil.SanitizeFileName(strings.TrimSuffix(filepath.Base(item.SourcePath), filepath.Ext(item.SourcePath)))
		}
		outputPath = filepath.Join(s.cfg.Paths.OutputDir, base+".ass")
	}

	p := pipeline.New(s.logger, pipelineOptions(s.cfg), timing.Resolver{
		Epsilon:          s.cfg.Timing.EpsilonSeconds,
		FallbackDuration: s.cfg.Timing.FallbackSeconds,
	})
	result, err := p.Process(ctx, pipeline.Request{
		InputPath:    item.SourcePath,
		OutputPath:   outputPath,
		TemplatePath: s.cfg.Paths.TemplatePath,
		Title:        item.Title,
		Width:        item.Width,
		Height:       item.Height,
		FontName:     s.cfg.Style.FontName,
		FontSize:     s.cfg.Style.FontSize,
		Alignment:    alignment,
	})
	if err != nil {
		return services.Wrap(services.ErrTransient, "styling", "convert", "Subtitle conversion failed for "+item.SourcePath, err)
	}

	item.OutputPath = result.OutputPath
	if stats, err := json.Marshal(result); err == nil {
		item.StatsJSON = string(stats)
	}
	item.SetProgress("Styling", "Conversion complete", 100)
	return nil
}

// HealthCheck verifies the output directory is configured.
func (s *Stage) HealthCheck(ctx context.Context) stage.Health {
	if s == nil || s.cfg == nil {
		return stage.Unhealthy("styling", "stage not configured")
	}
	if strings.TrimSpace(s.cfg.Paths.OutputDir) == "" {
		return stage.Unhealthy("styling", "paths.output_dir is empty")
	}
	return stage.Healthy("styling")
}

func pipelineOptions(cfg *config.Config) normalize.Options {
	return normalize.Options{
		RepairEncoding:      cfg.Normalize.RepairEncoding,
		ReplaceSmartQuotes:  cfg.Normalize.ReplaceSmartQuotes,
		CollapseLineBreaks:  cfg.Normalize.CollapseLineBreaks,
		StripAdvertisements: cfg.Normalize.StripAdvertisements,
	}
}
