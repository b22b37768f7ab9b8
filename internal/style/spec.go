package style

import (
	"fmt"
	"math"
)

// Alignment places subtitles on the frame using the ASS numpad convention.
type Alignment string

const (
	AlignTop    Alignment = "top"
	AlignMiddle Alignment = "middle"
	AlignBottom Alignment = "bottom"
)

// Code returns the numeric ASS alignment for the \an tag and Style line.
func (a Alignment) Code() int {
	switch a {
	case AlignTop:
		return 8
	case AlignMiddle:
		return 5
	default:
		return 2
	}
}

// Valid reports whether the alignment is one of the three known placements.
func (a Alignment) Valid() bool {
	switch a {
	case AlignTop, AlignMiddle, AlignBottom:
		return true
	}
	return false
}

// ParseAlignment converts a config string into an Alignment.
func ParseAlignment(value string) (Alignment, error) {
	a := Alignment(value)
	if !a.Valid() {
		return "", fmt.Errorf("unknown alignment %q (expected top, middle, or bottom)", value)
	}
	return a, nil
}

// Spec is the rendering configuration for one output file. Construct it with
// NewSpec so the margins match the target geometry; it is never mutated
// afterwards.
type Spec struct {
	FontName       string
	FontSize       int
	PrimaryColour  string
	OutlineColour  string
	Alignment      Alignment
	MarginLeft     int
	MarginRight    int
	MarginVertical int
}

const (
	// DefaultFontName and DefaultFontSize match the styling the encode
	// scripts burn into releases.
	DefaultFontName = "Arial"
	DefaultFontSize = 48

	defaultPrimaryColour = "&H00FFFFFF"
	defaultOutlineColour = "&H00000000"

	horizontalMarginRatio = 0.02
	verticalMarginRatio   = 0.02
	middleVerticalRatio   = 0.01
)

// NewSpec builds a Spec for the given font and placement with margins scaled
// to the target frame. Horizontal margins are 2% of the width; the vertical
// margin is 2% of the height, halved for middle alignment where the text
// sits clear of both edges already.
func NewSpec(fontName string, fontSize int, alignment Alignment, width, height int) Spec {
	if fontName == "" {
		fontName = DefaultFontName
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	if !alignment.Valid() {
		alignment = AlignBottom
	}
	verticalRatio := verticalMarginRatio
	if alignment == AlignMiddle {
		verticalRatio = middleVerticalRatio
	}
	horizontal := int(math.Round(float64(width) * horizontalMarginRatio))
	return Spec{
		FontName:       fontName,
		FontSize:       fontSize,
		PrimaryColour:  defaultPrimaryColour,
		OutlineColour:  defaultOutlineColour,
		Alignment:      alignment,
		MarginLeft:     horizontal,
		MarginRight:    horizontal,
		MarginVertical: int(math.Round(float64(height) * verticalRatio)),
	}
}
