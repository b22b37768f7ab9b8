package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"substation/internal/config"
	"substation/internal/notifications"
)

type recorded struct {
	body     string
	title    string
	tags     string
	priority string
}

func newTestService(t *testing.T, status int) (notifications.Service, *[]recorded) {
	t.Helper()

	var requests []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recorded{
			body:     string(body),
			title:    r.Header.Get("Title"),
			tags:     r.Header.Get("Tags"),
			priority: r.Header.Get("Priority"),
		})
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	return notifications.NewService(&cfg), &requests
}

func TestNotifyBatchStarted(t *testing.T) {
	service, requests := newTestService(t, http.StatusOK)
	if err := service.NotifyBatchStarted(context.Background(), 3); err != nil {
		t.Fatalf("NotifyBatchStarted failed: %v", err)
	}
	if len(*requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*requests))
	}
	got := (*requests)[0]
	if got.title != "Substation - Batch Started" {
		t.Fatalf("unexpected title: %q", got.title)
	}
	if got.body != "Started processing 3 subtitle files" {
		t.Fatalf("unexpected body: %q", got.body)
	}
}

func TestNotifyItemCompletedIncludesOutputPath(t *testing.T) {
	service, requests := newTestService(t, http.StatusOK)
	if err := service.NotifyItemCompleted(context.Background(), "My Movie", "/out/My Movie.ass"); err != nil {
		t.Fatalf("NotifyItemCompleted failed: %v", err)
	}
	got := (*requests)[0]
	if got.body != "Converted: My Movie\nFile: /out/My Movie.ass" {
		t.Fatalf("unexpected body: %q", got.body)
	}
}

func TestNotifyBatchCompletedWithFailures(t *testing.T) {
	service, requests := newTestService(t, http.StatusOK)
	if err := service.NotifyBatchCompleted(context.Background(), 4, 1, 90*time.Second); err != nil {
		t.Fatalf("NotifyBatchCompleted failed: %v", err)
	}
	got := (*requests)[0]
	if got.title != "Substation - Batch Complete (with errors)" {
		t.Fatalf("unexpected title: %q", got.title)
	}
	if got.body != "Batch complete: 4 succeeded, 1 failed in 1m30s" {
		t.Fatalf("unexpected body: %q", got.body)
	}
}

func TestNotifyErrorUsesHighPriority(t *testing.T) {
	service, requests := newTestService(t, http.StatusOK)
	if err := service.NotifyError(context.Background(), errors.New("boom"), "My Movie"); err != nil {
		t.Fatalf("NotifyError failed: %v", err)
	}
	got := (*requests)[0]
	if got.priority != "high" {
		t.Fatalf("expected high priority, got %q", got.priority)
	}
	if got.body != "Error with My Movie: boom" {
		t.Fatalf("unexpected body: %q", got.body)
	}
}

func TestSendReportsServerError(t *testing.T) {
	service, _ := newTestService(t, http.StatusForbidden)
	if err := service.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestDisabledTogglesSuppressSends(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	cfg.Notifications.Batch = false
	cfg.Notifications.Errors = false
	muted := notifications.NewService(&cfg)

	if err := muted.NotifyBatchStarted(context.Background(), 1); err != nil {
		t.Fatalf("NotifyBatchStarted failed: %v", err)
	}
	if err := muted.NotifyError(context.Background(), errors.New("x"), ""); err != nil {
		t.Fatalf("NotifyError failed: %v", err)
	}
	if requests != 0 {
		t.Fatalf("expected no requests, got %d", requests)
	}
}

func TestNoopServiceWithoutTopic(t *testing.T) {
	cfg := config.Default()
	service := notifications.NewService(&cfg)
	if err := service.TestNotification(context.Background()); err != nil {
		t.Fatalf("noop service should never fail: %v", err)
	}
}
