package timing_test

import (
	"testing"

	"substation/internal/subtitle"
	"substation/internal/timing"
)

func TestResolveNudgesOverlappingStart(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 1.0, End: 2.0, Text: "first"},
		{Start: 1.5, End: 3.0, Text: "second"},
	}
	resolved, stats := timing.Resolver{}.Resolve(cues)
	if stats.StartsMoved != 1 {
		t.Fatalf("expected 1 start moved, got %d", stats.StartsMoved)
	}
	if resolved[1].Start != 2.01 {
		t.Fatalf("expected second start at 2.01, got %v", resolved[1].Start)
	}
	if resolved[1].End != 3.0 {
		t.Fatalf("end should be untouched, got %v", resolved[1].End)
	}
}

func TestResolveExtendsDegenerateCue(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 5.0, End: 5.0, Text: "zero duration"},
	}
	resolved, stats := timing.Resolver{}.Resolve(cues)
	if stats.EndsExtended != 1 {
		t.Fatalf("expected 1 end extended, got %d", stats.EndsExtended)
	}
	if resolved[0].End != 6.0 {
		t.Fatalf("expected fallback duration of 1s, got end %v", resolved[0].End)
	}
}

func TestResolveDiscardsTinyDurationAfterNudge(t *testing.T) {
	// The second cue overlaps and its original end falls before the nudged
	// start, so it gets the full fallback duration rather than its own.
	cues := subtitle.CueList{
		{Start: 1.0, End: 3.0, Text: "first"},
		{Start: 2.0, End: 2.5, Text: "second"},
	}
	resolved, stats := timing.Resolver{}.Resolve(cues)
	if stats.StartsMoved != 1 || stats.EndsExtended != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if resolved[1].Start != 3.01 {
		t.Fatalf("expected start 3.01, got %v", resolved[1].Start)
	}
	if resolved[1].End != 4.01 {
		t.Fatalf("expected end 4.01, got %v", resolved[1].End)
	}
}

func TestResolveInvariants(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 0.0, End: 0.0, Text: "a"},
		{Start: 0.5, End: 0.6, Text: "b"},
		{Start: 0.55, End: 0.55, Text: "c"},
		{Start: 10.0, End: 12.0, Text: "d"},
	}
	resolved, _ := timing.Resolver{}.Resolve(cues)
	for i, cue := range resolved {
		if cue.End <= cue.Start {
			t.Fatalf("cue %d still degenerate: %v -> %v", i, cue.Start, cue.End)
		}
		if i > 0 && cue.Start < resolved[i-1].End {
			t.Fatalf("cue %d still overlaps predecessor: %v < %v", i, cue.Start, resolved[i-1].End)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 1.0, End: 2.0, Text: "a"},
		{Start: 1.5, End: 1.5, Text: "b"},
		{Start: 2.2, End: 4.0, Text: "c"},
	}
	resolver := timing.Resolver{}
	first, _ := resolver.Resolve(cues)
	snapshot := first.Clone()
	second, stats := resolver.Resolve(first)
	if stats.StartsMoved != 0 || stats.EndsExtended != 0 {
		t.Fatalf("second pass made adjustments: %+v", stats)
	}
	for i := range snapshot {
		if second[i] != snapshot[i] {
			t.Fatalf("cue %d changed on second pass: %v -> %v", i, snapshot[i], second[i])
		}
	}
}

func TestResolveLeavesCleanInputAlone(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 1.0, End: 2.0, Text: "a"},
		{Start: 2.0, End: 3.0, Text: "b"},
	}
	resolved, stats := timing.Resolver{}.Resolve(cues)
	if stats.StartsMoved != 0 || stats.EndsExtended != 0 {
		t.Fatalf("clean input adjusted: %+v", stats)
	}
	if resolved[1].Start != 2.0 {
		t.Fatalf("touching cues should not be nudged, got %v", resolved[1].Start)
	}
}

func TestResolveCustomPolicy(t *testing.T) {
	cues := subtitle.CueList{
		{Start: 1.0, End: 2.0, Text: "a"},
		{Start: 1.0, End: 1.0, Text: "b"},
	}
	resolved, _ := timing.Resolver{Epsilon: 0.1, FallbackDuration: 2.0}.Resolve(cues)
	if resolved[1].Start != 2.1 {
		t.Fatalf("expected start 2.1 with epsilon 0.1, got %v", resolved[1].Start)
	}
	if resolved[1].End != 4.1 {
		t.Fatalf("expected end 4.1 with fallback 2.0, got %v", resolved[1].End)
	}
}
