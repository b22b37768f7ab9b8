package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// mojibakeMarkers are character sequences that almost never occur in real
// subtitle text but always appear when UTF-8 bytes were decoded as
// Windows-1252 (e.g. "é" becomes "Ã©", a right quote becomes "â€™").
var mojibakeMarkers = []string{"Ã", "Â", "â€", "ï»¿"}

// RepairMojibake undoes the common UTF-8-read-as-Windows-1252 corruption.
// The text is encoded back to Windows-1252 bytes, which recovers the
// original UTF-8 byte sequence; the repair is kept only when the result is
// valid UTF-8 and strictly reduces corruption markers. Unmappable runes are
// replaced rather than aborting the repair, so the pass never fails.
func RepairMojibake(text string) string {
	before := countMarkers(text)
	if before == 0 {
		return text
	}

	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	repaired, err := encoder.String(text)
	if err != nil {
		return text
	}
	if !utf8.ValidString(repaired) {
		return text
	}
	if countMarkers(repaired) >= before {
		return text
	}
	// A leading BOM artifact decodes to a real BOM; drop it.
	repaired = strings.TrimPrefix(repaired, "\uFEFF")
	return repaired
}

func countMarkers(text string) int {
	count := 0
	for _, marker := range mojibakeMarkers {
		count += strings.Count(text, marker)
	}
	return count
}
