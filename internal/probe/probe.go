package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Fallback geometry used when no video file is available to probe.
const (
	FallbackWidth  = 1920
	FallbackHeight = 1080
)

// Geometry is the probed frame size of a video file.
type Geometry struct {
	Width  int
	Height int
}

// Fallback returns the assumed geometry for unprobed sources.
func Fallback() Geometry {
	return Geometry{Width: FallbackWidth, Height: FallbackHeight}
}

type result struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Inspect runs ffprobe against the video at path and returns the geometry of
// its first video stream. An empty binary selects ffprobe from PATH.
func Inspect(ctx context.Context, binary, path string) (Geometry, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Geometry{}, errors.New("probe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error", "-hide_banner",
		"-show_format", "-show_streams",
		"-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Geometry{}, fmt.Errorf("probe %s: %w: %s", path, err, strings.TrimSpace(string(output)))
	}
	return parseGeometry(output)
}

func parseGeometry(payload []byte) (Geometry, error) {
	var decoded result
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return Geometry{}, fmt.Errorf("probe parse: %w", err)
	}
	for _, s := range decoded.Streams {
		if !strings.EqualFold(s.CodecType, "video") {
			continue
		}
		if s.Width <= 0 || s.Height <= 0 {
			continue
		}
		return Geometry{Width: s.Width, Height: s.Height}, nil
	}
	return Geometry{}, errors.New("probe: no video stream with usable geometry")
}
