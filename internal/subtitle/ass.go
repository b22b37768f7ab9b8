package subtitle

import (
	"fmt"
	"strings"
)

// DefaultStyleName is the style assigned to every dialogue event the writer
// emits and the only style the injector rewrites in template headers.
const DefaultStyleName = "Default"

// ParseASS decodes Advanced SubStation Alpha text into a cue list. Only
// Dialogue events are read; override blocks ({\...}) are stripped from the
// text and \N markers are preserved as-is for the normalizer to handle.
func ParseASS(data []byte) (CueList, []BlockError, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	var cues CueList
	var skipped []BlockError

	position := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}
		position++
		cue, err := parseDialogueLine(trimmed)
		if err != nil {
			skipped = append(skipped, BlockError{Position: position, Err: err})
			continue
		}
		cue.Index = position
		cues = append(cues, cue)
	}
	return cues, skipped, nil
}

func parseDialogueLine(line string) (Cue, error) {
	payload := strings.TrimSpace(strings.TrimPrefix(line, "Dialogue:"))
	// Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text.
	fields := strings.SplitN(payload, ",", 10)
	if len(fields) < 10 {
		return Cue{}, fmt.Errorf("dialogue line has %d fields, want 10", len(fields))
	}
	start, err := ParseASSTimestamp(fields[1])
	if err != nil {
		return Cue{}, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseASSTimestamp(fields[2])
	if err != nil {
		return Cue{}, fmt.Errorf("end time: %w", err)
	}
	text := strings.TrimSpace(stripOverrideBlocks(fields[9]))
	if text == "" {
		return Cue{}, fmt.Errorf("empty dialogue text")
	}
	return Cue{Start: start, End: end, Text: text}, nil
}

func stripOverrideBlocks(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// WriteASS serializes a cue list beneath the provided header. The header is
// expected to end with the [Events] Format line; the style package builds
// it. Dialogue margins stay zero so the style's margins apply.
func WriteASS(header string, cues CueList) []byte {
	var b strings.Builder
	b.WriteString(strings.TrimRight(header, "\n"))
	b.WriteByte('\n')
	for _, cue := range cues {
		b.WriteString("Dialogue: 0,")
		b.WriteString(FormatASSTimestamp(cue.Start))
		b.WriteByte(',')
		b.WriteString(FormatASSTimestamp(cue.End))
		b.WriteString(",")
		b.WriteString(DefaultStyleName)
		b.WriteString(",,0,0,0,,")
		b.WriteString(escapeDialogueText(cue.Text))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// escapeDialogueText converts literal newlines to the ASS \N marker; an
// event is always a single physical line.
func escapeDialogueText(text string) string {
	return strings.ReplaceAll(text, "\n", `\N`)
}
