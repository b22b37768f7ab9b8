// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"substation/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.DatabaseDir = filepath.Join(base, "db")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	return &cfg
}

// WithGeometry overrides the fallback frame geometry on the test config.
func WithGeometry(width, height int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Video.Width = width
		cfg.Video.Height = height
	}
}

// WithTemplate sets the ASS template path on the test config.
func WithTemplate(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.TemplatePath = path
	}
}
