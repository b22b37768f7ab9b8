package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"substation/internal/logging"
	"substation/internal/normalize"
	"substation/internal/style"
	"substation/internal/subtitle"
	"substation/internal/timing"
)

// Request describes one conversion. Width and Height drive the margin
// geometry; TemplatePath optionally names an ASS file whose header is reused
// with the Default style rewritten.
type Request struct {
	InputPath    string
	OutputPath   string
	TemplatePath string
	Title        string
	Width        int
	Height       int
	FontName     string
	FontSize     int
	Alignment    style.Alignment
}

// Result reports what one conversion did. The counters feed both logging
// and the queue's persisted stats.
type Result struct {
	InputFormat   subtitle.Format `json:"input_format"`
	Cues          int             `json:"cues"`
	SkippedBlocks int             `json:"skipped_blocks"`
	RemovedCues   int             `json:"removed_cues"`
	RepairedCues  int             `json:"repaired_cues"`
	StartsMoved   int             `json:"starts_moved"`
	EndsExtended  int             `json:"ends_extended"`
	OutputPath    string          `json:"output_path"`
}

// Pipeline is the reusable transformation engine. It holds policy, not
// per-file state, so one instance serves a whole batch.
type Pipeline struct {
	logger    *slog.Logger
	normalize normalize.Options
	resolver  timing.Resolver
}

// New returns a pipeline with the given normalization policy and timing
// resolver. A nil logger disables logging.
func New(logger *slog.Logger, opts normalize.Options, resolver timing.Resolver) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{logger: logger, normalize: opts, resolver: resolver}
}

// Process reads the input file, transforms it, and writes the styled ASS
// output. I/O failures are fatal for this file only; malformed cue blocks
// are skipped with a warning.
func (p *Pipeline) Process(ctx context.Context, req Request) (Result, error) {
	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("read subtitle: %w", err)
	}

	var template string
	if req.TemplatePath != "" {
		raw, err := os.ReadFile(req.TemplatePath)
		if err != nil {
			return Result{}, fmt.Errorf("read template: %w", err)
		}
		template = string(raw)
	}

	output, result, err := p.Convert(data, req.InputPath, template, req)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = replaceExtension(req.InputPath, ".ass")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}
	result.OutputPath = outputPath

	p.logger.Info("subtitle converted",
		logging.String("input", req.InputPath),
		logging.String("output", outputPath),
		logging.Int("cues", result.Cues),
		logging.Int("skipped_blocks", result.SkippedBlocks),
		logging.Int("removed_cues", result.RemovedCues),
		logging.Int("starts_moved", result.StartsMoved),
		logging.Int("ends_extended", result.EndsExtended),
	)
	return result, nil
}

// Convert runs the in-memory transformation: parse, normalize, resolve,
// style, serialize. The name is used only for format detection and log
// context; template may be empty.
func (p *Pipeline) Convert(data []byte, name, template string, req Request) ([]byte, Result, error) {
	format := subtitle.DetectFormat(name, data)

	var cues subtitle.CueList
	var skipped []subtitle.BlockError
	var err error
	switch format {
	case subtitle.FormatASS:
		cues, skipped, err = subtitle.ParseASS(data)
	default:
		cues, skipped, err = subtitle.ParseSRT(data)
	}
	if err != nil {
		return nil, Result{}, fmt.Errorf("parse %s: %w", format, err)
	}
	for _, blockErr := range skipped {
		p.logger.Warn("skipping malformed cue block",
			logging.String("input", name),
			logging.Int("block", blockErr.Position),
			logging.Error(blockErr.Err),
		)
	}
	if len(cues) == 0 {
		return nil, Result{}, fmt.Errorf("no usable cues in %s", name)
	}

	cues, normStats := normalize.Apply(cues, p.normalize)
	if len(cues) == 0 {
		return nil, Result{}, fmt.Errorf("every cue removed during normalization of %s", name)
	}
	cues, timingStats := p.resolver.Resolve(cues)

	spec := style.NewSpec(req.FontName, req.FontSize, req.Alignment, req.Width, req.Height)
	var header string
	if template != "" {
		header = style.InjectIntoTemplate(template, spec, req.Width, req.Height, req.Title)
	} else {
		header = style.RenderHeader(spec, req.Width, req.Height, req.Title)
	}

	output := subtitle.WriteASS(header, cues)
	result := Result{
		InputFormat:   format,
		Cues:          len(cues),
		SkippedBlocks: len(skipped),
		RemovedCues:   normStats.RemovedCues,
		RepairedCues:  normStats.RepairedCues,
		StartsMoved:   timingStats.StartsMoved,
		EndsExtended:  timingStats.EndsExtended,
	}
	return output, result, nil
}

func replaceExtension(path, ext string) string {
	old := filepath.Ext(path)
	return strings.TrimSuffix(path, old) + ext
}
