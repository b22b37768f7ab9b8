package probing_test

import (
	"context"
	"testing"

	"substation/internal/logging"
	"substation/internal/probing"
	"substation/internal/testsupport"
)

func TestExecuteUsesConfiguredGeometryWithoutVideo(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithGeometry(1280, 720))
	store := testsupport.MustOpenStore(t, cfg)
	item := testsupport.AddItem(t, store, "/subs/movie.srt", "")

	stg := probing.NewStage(cfg, store, logging.NewNop())
	if err := stg.Prepare(context.Background(), item); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if err := stg.Execute(context.Background(), item); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if item.Width != 1280 || item.Height != 720 {
		t.Fatalf("expected configured geometry, got %dx%d", item.Width, item.Height)
	}
	if item.ProgressPercent != 100 {
		t.Fatalf("expected progress 100, got %v", item.ProgressPercent)
	}
}

func TestExecuteRejectsNilItem(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	stg := probing.NewStage(cfg, store, logging.NewNop())
	if err := stg.Execute(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil item")
	}
}

func TestExecuteFailsForUnreadableVideo(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	item := testsupport.AddItem(t, store, "/subs/movie.srt", "/videos/does-not-exist.mkv")

	stg := probing.NewStage(cfg, store, logging.NewNop())
	if err := stg.Execute(context.Background(), item); err == nil {
		t.Fatal("expected error when the video cannot be probed")
	}
}
