package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockError records one malformed SRT block that was skipped during
// parsing. Position is the 1-based block number in the source file.
type BlockError struct {
	Position int
	Err      error
}

func (e BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Position, e.Err)
}

// ParseSRT decodes SubRip text into a cue list. Blocks whose timestamp line
// does not match the HH:MM:SS,mmm --> HH:MM:SS,mmm pattern are skipped and
// reported rather than failing the whole file. Cues are returned in file
// order; chronological order is not assumed.
func ParseSRT(data []byte) (CueList, []BlockError, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil, nil
	}

	blocks := strings.Split(trimmed, "\n\n")
	cues := make(CueList, 0, len(blocks))
	var skipped []BlockError

	for i, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		cue, err := parseSRTBlock(block)
		if err != nil {
			skipped = append(skipped, BlockError{Position: i + 1, Err: err})
			continue
		}
		cues = append(cues, cue)
	}
	return cues, skipped, nil
}

func parseSRTBlock(block string) (Cue, error) {
	lines := strings.Split(block, "\n")

	// The index line is optional in the wild; tolerate its absence.
	start := 0
	index := 0
	if v, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
		index = v
		start = 1
	}
	if start >= len(lines) {
		return Cue{}, fmt.Errorf("missing timestamp line")
	}

	timing := lines[start]
	if !strings.Contains(timing, "-->") {
		return Cue{}, fmt.Errorf("missing timestamp line")
	}
	parts := strings.SplitN(timing, "-->", 2)
	startSec, err := ParseSRTTimestamp(parts[0])
	if err != nil {
		return Cue{}, fmt.Errorf("start time: %w", err)
	}
	endSec, err := ParseSRTTimestamp(parts[1])
	if err != nil {
		return Cue{}, fmt.Errorf("end time: %w", err)
	}

	textLines := make([]string, 0, len(lines)-start-1)
	for _, line := range lines[start+1:] {
		textLines = append(textLines, strings.TrimRight(line, " \t"))
	}
	text := strings.TrimSpace(strings.Join(textLines, "\n"))
	if text == "" {
		return Cue{}, fmt.Errorf("empty cue text")
	}

	return Cue{Index: index, Start: startSec, End: endSec, Text: text}, nil
}

// WriteSRT serializes a cue list as SubRip text, reassigning indices
// sequentially from 1.
func WriteSRT(cues CueList) []byte {
	var b strings.Builder
	for i, cue := range cues {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('\n')
		b.WriteString(FormatSRTTimestamp(cue.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatSRTTimestamp(cue.End))
		b.WriteByte('\n')
		b.WriteString(cue.Text)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
