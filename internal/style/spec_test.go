package style_test

import (
	"testing"

	"substation/internal/style"
)

func TestNewSpecScalesMarginsTo1080p(t *testing.T) {
	spec := style.NewSpec("Arial", 48, style.AlignBottom, 1920, 1080)
	if spec.MarginLeft != 38 || spec.MarginRight != 38 {
		t.Fatalf("expected horizontal margins 38, got %d/%d", spec.MarginLeft, spec.MarginRight)
	}
	if spec.MarginVertical != 22 {
		t.Fatalf("expected vertical margin 22, got %d", spec.MarginVertical)
	}
}

func TestNewSpecHalvesVerticalMarginForMiddle(t *testing.T) {
	spec := style.NewSpec("Arial", 48, style.AlignMiddle, 1920, 1080)
	if spec.MarginVertical != 11 {
		t.Fatalf("expected vertical margin 11 for middle alignment, got %d", spec.MarginVertical)
	}
	if spec.MarginLeft != 38 {
		t.Fatalf("horizontal margin should be unchanged, got %d", spec.MarginLeft)
	}
}

func TestNewSpecScalesWithGeometry(t *testing.T) {
	spec := style.NewSpec("Arial", 48, style.AlignBottom, 1280, 720)
	if spec.MarginLeft != 26 || spec.MarginVertical != 14 {
		t.Fatalf("unexpected 720p margins: %d/%d", spec.MarginLeft, spec.MarginVertical)
	}
}

func TestNewSpecDefaults(t *testing.T) {
	spec := style.NewSpec("", 0, style.Alignment("sideways"), 1920, 1080)
	if spec.FontName != style.DefaultFontName {
		t.Fatalf("expected default font, got %q", spec.FontName)
	}
	if spec.FontSize != style.DefaultFontSize {
		t.Fatalf("expected default font size, got %d", spec.FontSize)
	}
	if spec.Alignment != style.AlignBottom {
		t.Fatalf("expected bottom fallback alignment, got %q", spec.Alignment)
	}
}

func TestAlignmentCodes(t *testing.T) {
	cases := []struct {
		alignment style.Alignment
		want      int
	}{
		{style.AlignTop, 8},
		{style.AlignMiddle, 5},
		{style.AlignBottom, 2},
	}
	for _, tc := range cases {
		if got := tc.alignment.Code(); got != tc.want {
			t.Fatalf("%s.Code() = %d, want %d", tc.alignment, got, tc.want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	if _, err := style.ParseAlignment("diagonal"); err == nil {
		t.Fatal("expected error for unknown alignment")
	}
	alignment, err := style.ParseAlignment("top")
	if err != nil {
		t.Fatalf("ParseAlignment failed: %v", err)
	}
	if alignment != style.AlignTop {
		t.Fatalf("expected top, got %q", alignment)
	}
}
