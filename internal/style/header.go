package style

import (
	"fmt"
	"strings"
)

const stylesFormatLine = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"

const eventsFormatLine = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

// StyleLine renders the Default style entry for the [V4+ Styles] section.
func (s Spec) StyleLine() string {
	return fmt.Sprintf(
		"Style: Default,%s,%d,%s,&H000000FF,%s,&H00000000,0,0,0,0,100,100,0,0,1,2,1,%d,%d,%d,%d,1",
		s.FontName, s.FontSize, s.PrimaryColour, s.OutlineColour,
		s.Alignment.Code(), s.MarginLeft, s.MarginRight, s.MarginVertical,
	)
}

// RenderHeader synthesizes a complete ASS header for the spec and target
// frame: [Script Info], a [V4+ Styles] section holding only the Default
// style, and the [Events] format line ready for dialogue to follow.
func RenderHeader(spec Spec, width, height int, title string) string {
	var b strings.Builder
	b.WriteString("[Script Info]\n")
	if title != "" {
		fmt.Fprintf(&b, "Title: %s\n", title)
	}
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", width)
	fmt.Fprintf(&b, "PlayResY: %d\n", height)
	b.WriteString("WrapStyle: 0\n")
	b.WriteString("ScaledBorderAndShadow: yes\n")
	b.WriteString("\n[V4+ Styles]\n")
	b.WriteString(stylesFormatLine + "\n")
	b.WriteString(spec.StyleLine() + "\n")
	b.WriteString("\n[Events]\n")
	b.WriteString(eventsFormatLine + "\n")
	return b.String()
}

// InjectIntoTemplate rewrites the Default style inside an existing ASS
// header and returns the header ready for dialogue lines: existing events
// are dropped and the [Events] Format line is guaranteed. Every other header
// line passes through untouched. A template without a styles section falls
// back to a freshly synthesized header.
func InjectIntoTemplate(template string, spec Spec, width, height int, title string) string {
	lines := strings.Split(strings.ReplaceAll(template, "\r\n", "\n"), "\n")
	lines = dropEvents(lines)

	stylesStart := -1
	for i, line := range lines {
		if isStylesSection(line) {
			stylesStart = i
			break
		}
	}
	if stylesStart == -1 {
		return RenderHeader(spec, width, height, title)
	}

	replaced := false
	for i := stylesStart + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "[") {
			break
		}
		if strings.HasPrefix(line, "Style:") && styleName(line) == "Default" {
			lines[i] = spec.StyleLine()
			replaced = true
			break
		}
	}
	if !replaced {
		// Section exists but carries no Default entry; add one right
		// after the Format line, or directly after the section header.
		insert := stylesStart + 1
		if insert < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[insert]), "Format:") {
			insert++
		}
		lines = append(lines[:insert], append([]string{spec.StyleLine()}, lines[insert:]...)...)
	}

	header := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if !hasEventsSection(lines) {
		header += "\n\n[Events]\n" + eventsFormatLine
	}
	return header + "\n"
}

// dropEvents removes existing dialogue so the template contributes only its
// header. The [Events] section marker and its Format line are kept.
func dropEvents(lines []string) []string {
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Dialogue:") || strings.HasPrefix(trimmed, "Comment:") {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func hasEventsSection(lines []string) bool {
	for _, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), "[Events]") {
			return true
		}
	}
	return false
}

func isStylesSection(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	return trimmed == "[v4+ styles]" || trimmed == "[v4 styles]"
}

func styleName(line string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "Style:"))
	name, _, _ := strings.Cut(rest, ",")
	return strings.TrimSpace(name)
}
