package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleSRT is a small well-formed subtitle used across package tests. The
// second cue starts before the first one ends.
const SampleSRT = `1
00:00:01,000 --> 00:00:04,000
Hello there.

2
00:00:03,500 --> 00:00:06,000
General Kenobi!
`

// WriteSubtitle writes content to path, creating parent directories.
func WriteSubtitle(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
