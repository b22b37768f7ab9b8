package probe

import (
	"context"
	"strings"
	"testing"
)

func TestParseGeometry(t *testing.T) {
	payload := `{
		"streams": [
			{"codec_type": "audio"},
			{"codec_type": "video", "width": 1920, "height": 1080},
			{"codec_type": "video", "width": 640, "height": 480}
		]
	}`
	geometry, err := parseGeometry([]byte(payload))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geometry.Width != 1920 || geometry.Height != 1080 {
		t.Fatalf("expected first video stream geometry, got %dx%d", geometry.Width, geometry.Height)
	}
}

func TestParseGeometrySkipsStreamsWithoutDimensions(t *testing.T) {
	payload := `{
		"streams": [
			{"codec_type": "video", "width": 0, "height": 0},
			{"codec_type": "video", "width": 1280, "height": 720}
		]
	}`
	geometry, err := parseGeometry([]byte(payload))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geometry.Width != 1280 || geometry.Height != 720 {
		t.Fatalf("unexpected geometry: %dx%d", geometry.Width, geometry.Height)
	}
}

func TestParseGeometryNoVideoStream(t *testing.T) {
	if _, err := parseGeometry([]byte(`{"streams": [{"codec_type": "audio"}]}`)); err == nil {
		t.Fatal("expected error when no video stream is present")
	}
	if _, err := parseGeometry([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectReportsToolFailure(t *testing.T) {
	_, err := Inspect(context.Background(), "definitely-not-ffprobe", "/tmp/whatever.mkv")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "probe") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestFallback(t *testing.T) {
	geometry := Fallback()
	if geometry.Width != FallbackWidth || geometry.Height != FallbackHeight {
		t.Fatalf("unexpected fallback geometry: %#v", geometry)
	}
}
