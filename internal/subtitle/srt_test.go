package subtitle_test

import (
	"strings"
	"testing"

	"substation/internal/subtitle"
)

func TestParseSRT(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:04,000\nHello there.\n\n2\n00:00:05,250 --> 00:00:07,500\nSecond line\nwith a break.\n"
	cues, skipped, err := subtitle.ParseSRT([]byte(input))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped blocks, got %v", skipped)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Start != 1.0 || cues[0].End != 4.0 {
		t.Fatalf("unexpected first cue timing: %v -> %v", cues[0].Start, cues[0].End)
	}
	if cues[1].Text != "Second line\nwith a break." {
		t.Fatalf("unexpected second cue text: %q", cues[1].Text)
	}
}

func TestParseSRTSkipsMalformedBlocks(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nGood cue.\n\n2\nnot a timestamp\nBad cue.\n\n3\n00:00:03,000 --> 00:00:04,000\nAnother good cue.\n"
	cues, skipped, err := subtitle.ParseSRT([]byte(input))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 surviving cues, got %d", len(cues))
	}
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped block, got %d", len(skipped))
	}
	if skipped[0].Position != 2 {
		t.Fatalf("expected block 2 skipped, got %d", skipped[0].Position)
	}
}

func TestParseSRTToleratesMissingIndexAndBOM(t *testing.T) {
	input := "\uFEFF00:00:01,000 --> 00:00:02,000\nNo index here.\n"
	cues, skipped, err := subtitle.ParseSRT([]byte(input))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped blocks, got %v", skipped)
	}
	if len(cues) != 1 || cues[0].Text != "No index here." {
		t.Fatalf("unexpected cues: %#v", cues)
	}
}

func TestParseSRTHandlesCRLFAndEmptyInput(t *testing.T) {
	input := "1\r\n00:00:01,000 --> 00:00:02,000\r\nWindows line endings.\r\n"
	cues, _, err := subtitle.ParseSRT([]byte(input))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "Windows line endings." {
		t.Fatalf("unexpected cues: %#v", cues)
	}

	cues, skipped, err := subtitle.ParseSRT([]byte("   \n\n"))
	if err != nil {
		t.Fatalf("ParseSRT on blank input failed: %v", err)
	}
	if len(cues) != 0 || len(skipped) != 0 {
		t.Fatalf("expected empty result for blank input, got %d cues, %d skipped", len(cues), len(skipped))
	}
}

func TestWriteSRTRoundTrip(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 1.0, End: 4.0, Text: "Hello there."},
		{Start: 5.25, End: 7.5, Text: "Two lines\nof text."},
	}
	data := subtitle.WriteSRT(cues)
	parsed, skipped, err := subtitle.ParseSRT(data)
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("round trip produced skipped blocks: %v", skipped)
	}
	if len(parsed) != len(cues) {
		t.Fatalf("expected %d cues, got %d", len(cues), len(parsed))
	}
	for i := range cues {
		if parsed[i].Start != cues[i].Start || parsed[i].End != cues[i].End {
			t.Fatalf("cue %d timing changed: %v -> %v", i, cues[i], parsed[i])
		}
		if parsed[i].Text != cues[i].Text {
			t.Fatalf("cue %d text changed: %q -> %q", i, cues[i].Text, parsed[i].Text)
		}
		if parsed[i].Index != i+1 {
			t.Fatalf("cue %d index not reassigned: %d", i, parsed[i].Index)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		want    subtitle.Format
	}{
		{"srt extension", "movie.srt", "", subtitle.FormatSRT},
		{"ass extension", "movie.ass", "", subtitle.FormatASS},
		{"ssa extension", "movie.ssa", "", subtitle.FormatASS},
		{"bracket content", "movie.txt", "[Script Info]\n", subtitle.FormatASS},
		{"numeric content", "movie.txt", "1\n00:00:01,000 --> 00:00:02,000\nHi\n", subtitle.FormatSRT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := subtitle.DetectFormat(tc.file, []byte(tc.content))
			if got != tc.want {
				t.Fatalf("DetectFormat(%q) = %q, want %q", tc.file, got, tc.want)
			}
		})
	}
}

func TestWriteSRTEndsWithSingleTrailingNewline(t *testing.T) {
	data := subtitle.WriteSRT(subtitle.CueList{{Start: 0, End: 1, Text: "x"}})
	text := string(data)
	if !strings.HasSuffix(text, "x\n") || strings.HasSuffix(text, "\n\n") {
		t.Fatalf("unexpected trailing bytes: %q", text)
	}
}
