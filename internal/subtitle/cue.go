package subtitle

import "strings"

// Cue is one timed subtitle entry. Times are seconds from stream start.
// Index is the sequence position from the source file; the writers reassign
// it, so it carries no meaning after parsing.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Duration returns the cue display duration in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// CueList is an ordered sequence of cues. Insertion order is file order;
// after overlap resolution the [Start, End) intervals are strictly
// increasing and non-overlapping.
type CueList []Cue

// Clone returns a deep copy of the list.
func (l CueList) Clone() CueList {
	if l == nil {
		return nil
	}
	cp := make(CueList, len(l))
	copy(cp, l)
	return cp
}

// Format identifies a subtitle file format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatASS Format = "ass"
)

// DetectFormat guesses the format from a file name and, when ambiguous,
// the leading content. ASS files open with a bracketed section header.
func DetectFormat(name string, content []byte) Format {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(lower, ".ass"), strings.HasSuffix(lower, ".ssa"):
		return FormatASS
	case strings.HasSuffix(lower, ".srt"):
		return FormatSRT
	}
	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		return FormatASS
	}
	return FormatSRT
}
