package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"substation/internal/normalize"
	"substation/internal/pipeline"
	"substation/internal/style"
	"substation/internal/subtitle"
	"substation/internal/timing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
Hello there.

2
00:00:03,500 --> 00:00:06,000
General Kenobi!

3
00:00:07,000 --> 00:00:07,000
Blink and you miss it.

4
00:00:08,000 --> 00:00:09,000
Downloaded from OpenSubtitles.org
`

func newPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	return pipeline.New(nil, normalize.Defaults(), timing.Resolver{})
}

func baseRequest() pipeline.Request {
	return pipeline.Request{
		Title:     "Sample",
		Width:     1920,
		Height:    1080,
		FontName:  "Arial",
		FontSize:  48,
		Alignment: style.AlignBottom,
	}
}

func TestConvertEndToEnd(t *testing.T) {
	output, result, err := newPipeline(t).Convert([]byte(sampleSRT), "sample.srt", "", baseRequest())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.InputFormat != subtitle.FormatSRT {
		t.Fatalf("expected srt input format, got %q", result.InputFormat)
	}
	if result.Cues != 3 {
		t.Fatalf("expected 3 cues after normalization, got %d", result.Cues)
	}
	if result.RemovedCues != 1 {
		t.Fatalf("expected 1 removed ad cue, got %d", result.RemovedCues)
	}
	if result.StartsMoved != 1 || result.EndsExtended != 1 {
		t.Fatalf("unexpected timing stats: %+v", result)
	}

	text := string(output)
	if !strings.Contains(text, "Dialogue: 0,0:00:04.01,0:00:06.00,Default,,0,0,0,,General Kenobi!") {
		t.Fatalf("overlap not resolved in output:\n%s", text)
	}
	if !strings.Contains(text, "0:00:07.00,0:00:08.00") {
		t.Fatalf("degenerate cue not extended:\n%s", text)
	}
	if strings.Contains(text, "OpenSubtitles") {
		t.Fatalf("ad cue survived:\n%s", text)
	}

	cues, skipped, err := subtitle.ParseASS(output)
	if err != nil {
		t.Fatalf("output did not parse back: %v", err)
	}
	if len(skipped) != 0 || len(cues) != 3 {
		t.Fatalf("unexpected round-trip result: %d cues, %d skipped", len(cues), len(skipped))
	}
}

func TestConvertSkipsMalformedBlocks(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nGood.\n\n2\nbroken\nBad.\n"
	_, result, err := newPipeline(t).Convert([]byte(input), "broken.srt", "", baseRequest())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if result.Cues != 1 || result.SkippedBlocks != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestConvertRejectsEmptyInput(t *testing.T) {
	if _, _, err := newPipeline(t).Convert([]byte("  \n"), "empty.srt", "", baseRequest()); err == nil {
		t.Fatal("expected error for cue-free input")
	}
}

func TestConvertRejectsAllAdsInput(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nDownloaded from OpenSubtitles.org\n"
	if _, _, err := newPipeline(t).Convert([]byte(input), "ads.srt", "", baseRequest()); err == nil {
		t.Fatal("expected error when normalization removes every cue")
	}
}

func TestConvertAcceptsASSInput(t *testing.T) {
	input := "[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,From ASS\n"
	_, result, err := newPipeline(t).Convert([]byte(input), "input.ass", "", baseRequest())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if result.InputFormat != subtitle.FormatASS || result.Cues != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestConvertUsesTemplateHeader(t *testing.T) {
	template := "[Script Info]\nTitle: My Template\n\n[V4+ Styles]\nFormat: Name, Fontname\nStyle: Default,Times,20\n"
	input := "1\n00:00:01,000 --> 00:00:02,000\nHi.\n"
	output, _, err := newPipeline(t).Convert([]byte(input), "in.srt", template, baseRequest())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	text := string(output)
	if !strings.Contains(text, "Title: My Template") {
		t.Fatalf("template header not used:\n%s", text)
	}
	if strings.Contains(text, "Times") {
		t.Fatalf("Default style not rewritten:\n%s", text)
	}
}

func TestProcessWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "movie.srt")
	if err := os.WriteFile(inputPath, []byte(sampleSRT), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	req := baseRequest()
	req.InputPath = inputPath
	req.OutputPath = filepath.Join(dir, "out", "movie.ass")

	result, err := newPipeline(t).Process(context.Background(), req)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if result.OutputPath != req.OutputPath {
		t.Fatalf("unexpected output path: %q", result.OutputPath)
	}
	data, err := os.ReadFile(req.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "[Script Info]") {
		t.Fatalf("output missing header:\n%s", data)
	}
}

func TestProcessDefaultsOutputPath(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "movie.srt")
	if err := os.WriteFile(inputPath, []byte(sampleSRT), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	req := baseRequest()
	req.InputPath = inputPath

	result, err := newPipeline(t).Process(context.Background(), req)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	want := filepath.Join(dir, "movie.ass")
	if result.OutputPath != want {
		t.Fatalf("expected %q, got %q", want, result.OutputPath)
	}
}

func TestProcessMissingInput(t *testing.T) {
	req := baseRequest()
	req.InputPath = filepath.Join(t.TempDir(), "missing.srt")
	if _, err := newPipeline(t).Process(context.Background(), req); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
