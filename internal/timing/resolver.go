package timing

import "substation/internal/subtitle"

const (
	// DefaultEpsilon is the gap inserted between an adjusted cue and its
	// predecessor, one centisecond of ASS timestamp granularity.
	DefaultEpsilon = 0.01
	// DefaultFallbackDuration replaces the duration of a cue that would
	// otherwise end at or before its adjusted start.
	DefaultFallbackDuration = 1.0
)

// Resolver nudges cue starts and ends so that consecutive cues never
// overlap and no cue is degenerate. The pass is O(n), looks only at the
// immediate predecessor, and is idempotent on its own output.
type Resolver struct {
	// Epsilon is the seconds added past the previous cue's end when a
	// start must move. Zero or negative selects DefaultEpsilon.
	Epsilon float64
	// FallbackDuration is the fixed duration given to a cue whose end no
	// longer exceeds its start after adjustment. The original duration is
	// discarded, even when it was positive but tiny. Zero or negative
	// selects DefaultFallbackDuration.
	FallbackDuration float64
}

// Stats reports the adjustments made during one Resolve pass.
type Stats struct {
	StartsMoved  int
	EndsExtended int
}

// Resolve rewrites the list in place and returns it with adjustment stats.
// Input is expected in chronological order; the result satisfies
// cue[i].End > cue[i].Start and cue[i+1].Start >= cue[i].End for all i.
func (r Resolver) Resolve(cues subtitle.CueList) (subtitle.CueList, Stats) {
	epsilon := r.Epsilon
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	fallback := r.FallbackDuration
	if fallback <= 0 {
		fallback = DefaultFallbackDuration
	}

	var stats Stats
	lastEnd := 0.0
	for i := range cues {
		cue := &cues[i]
		if cue.Start < lastEnd {
			cue.Start = lastEnd + epsilon
			stats.StartsMoved++
		}
		if cue.End <= cue.Start {
			cue.End = cue.Start + fallback
			stats.EndsExtended++
		}
		lastEnd = cue.End
	}
	return cues, stats
}
