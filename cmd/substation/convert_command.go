package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/logging"
	"substation/internal/normalize"
	"substation/internal/pipeline"
	"substation/internal/probe"
	"substation/internal/style"
	"substation/internal/timing"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag    string
		videoFlag     string
		templateFlag  string
		titleFlag     string
		widthFlag     int
		heightFlag    int
		fontFlag      string
		fontSizeFlag  int
		alignmentFlag string
	)

	cmd := &cobra.Command{
		Use:   "convert <subtitle-file>",
		Short: "Convert one subtitle file to styled ASS",
		Long: `Convert a single SRT (or ASS) subtitle file to a styled ASS file without
going through the queue. Flags override the configured style; when a video
file is given its geometry drives the margin scaling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			width := cfg.Video.Width
			height := cfg.Video.Height
			if widthFlag > 0 {
				width = widthFlag
			}
			if heightFlag > 0 {
				height = heightFlag
			}
			if videoFlag != "" {
				geometry, err := probe.Inspect(cmd.Context(), cfg.FFprobeBinary(), videoFlag)
				if err != nil {
					return fmt.Errorf("probe video: %w", err)
				}
				width = geometry.Width
				height = geometry.Height
			}

			alignmentValue := cfg.Style.Alignment
			if alignmentFlag != "" {
				alignmentValue = alignmentFlag
			}
			alignment, err := style.ParseAlignment(alignmentValue)
			if err != nil {
				return err
			}

			fontName := cfg.Style.FontName
			if fontFlag != "" {
				fontName = fontFlag
			}
			fontSize := cfg.Style.FontSize
			if fontSizeFlag > 0 {
				fontSize = fontSizeFlag
			}
			templatePath := cfg.Paths.TemplatePath
			if templateFlag != "" {
				templatePath = templateFlag
			}

			inputPath := args[0]
			title := titleFlag
			if title == "" {
				base := filepath.Base(inputPath)
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			p := pipeline.New(logger, normalize.Options{
				RepairEncoding:      cfg.Normalize.RepairEncoding,
				ReplaceSmartQuotes:  cfg.Normalize.ReplaceSmartQuotes,
				CollapseLineBreaks:  cfg.Normalize.CollapseLineBreaks,
				StripAdvertisements: cfg.Normalize.StripAdvertisements,
			}, timing.Resolver{
				Epsilon:          cfg.Timing.EpsilonSeconds,
				FallbackDuration: cfg.Timing.FallbackSeconds,
			})

			result, err := p.Process(cmd.Context(), pipeline.Request{
				InputPath:    inputPath,
				OutputPath:   outputFlag,
				TemplatePath: templatePath,
				Title:        title,
				Width:        width,
				Height:       height,
				FontName:     fontName,
				FontSize:     fontSize,
				Alignment:    alignment,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d cues", result.OutputPath, result.Cues)
			if result.SkippedBlocks > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d blocks skipped", result.SkippedBlocks)
			}
			if result.RemovedCues > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d cues removed", result.RemovedCues)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ")")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: input path with .ass extension)")
	cmd.Flags().StringVar(&videoFlag, "video", "", "Video file whose geometry drives margin scaling")
	cmd.Flags().StringVar(&templateFlag, "template", "", "ASS template whose header is reused")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Script title written into the ASS header")
	cmd.Flags().IntVar(&widthFlag, "width", 0, "Target frame width (overrides config)")
	cmd.Flags().IntVar(&heightFlag, "height", 0, "Target frame height (overrides config)")
	cmd.Flags().StringVar(&fontFlag, "font", "", "Font name (overrides config)")
	cmd.Flags().IntVar(&fontSizeFlag, "font-size", 0, "Font size (overrides config)")
	cmd.Flags().StringVar(&alignmentFlag, "alignment", "", "Subtitle alignment: top, middle, or bottom")

	return cmd
}
