package normalize

import (
	"strings"

	"substation/internal/subtitle"
)

// Options selects which repairs run. The zero value disables everything;
// Defaults returns the shipped policy.
type Options struct {
	// RepairEncoding re-decodes text that looks like UTF-8 bytes
	// misinterpreted as Windows-1252.
	RepairEncoding bool
	// ReplaceSmartQuotes substitutes the U+2019 right single quote with
	// the ASCII apostrophe. Deliberately narrow; no other punctuation is
	// normalized.
	ReplaceSmartQuotes bool
	// CollapseLineBreaks folds multi-line cue text into a single line
	// joined by spaces. Lossy for deliberately stacked captions, so it is
	// a policy switch rather than a fixed behavior.
	CollapseLineBreaks bool
	// StripAdvertisements drops cues that match known subtitle-spam
	// patterns (uploader credits, URLs, release groups).
	StripAdvertisements bool
}

// Defaults returns the standard normalization policy.
func Defaults() Options {
	return Options{
		RepairEncoding:      true,
		ReplaceSmartQuotes:  true,
		CollapseLineBreaks:  true,
		StripAdvertisements: true,
	}
}

// Stats reports the effects of one Apply pass.
type Stats struct {
	RepairedCues int
	RemovedCues  int
}

// Apply rewrites cue text according to the options and returns the
// surviving cues with repair stats. Cue order and timestamps are preserved.
func Apply(cues subtitle.CueList, opts Options) (subtitle.CueList, Stats) {
	var stats Stats
	out := cues[:0]
	for _, cue := range cues {
		if opts.StripAdvertisements && isAdvertisement(cue.Text) {
			stats.RemovedCues++
			continue
		}
		text := cue.Text
		if opts.RepairEncoding {
			text = RepairMojibake(text)
		}
		if opts.ReplaceSmartQuotes {
			text = strings.ReplaceAll(text, "’", "'")
		}
		if opts.CollapseLineBreaks {
			text = collapseLineBreaks(text)
		}
		if text != cue.Text {
			stats.RepairedCues++
			cue.Text = text
		}
		out = append(out, cue)
	}
	return out, stats
}

// collapseLineBreaks folds explicit break markers and literal newlines into
// single spaces. Both the SRT newline convention and the ASS \N marker are
// handled so either input format normalizes the same way.
func collapseLineBreaks(text string) string {
	text = strings.ReplaceAll(text, `\N`, " ")
	text = strings.ReplaceAll(text, `\n`, " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.Join(strings.Fields(text), " ")
}
