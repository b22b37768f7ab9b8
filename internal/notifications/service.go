package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"substation/internal/config"
)

const userAgent = "Substation-Go/0.1.0"

// Service defines the notification surface exposed to workflow components.
type Service interface {
	NotifyBatchStarted(ctx context.Context, count int) error
	NotifyItemCompleted(ctx context.Context, title, outputPath string) error
	NotifyBatchCompleted(ctx context.Context, processed, failed int, duration time.Duration) error
	NotifyError(ctx context.Context, err error, context string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		batch:    cfg.Notifications.Batch,
		errors:   cfg.Notifications.Errors,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	batch    bool
	errors   bool
}

func (n *ntfyService) NotifyBatchStarted(ctx context.Context, count int) error {
	if !n.batch {
		return nil
	}
	data := payload{
		title:   "Substation - Batch Started",
		message: fmt.Sprintf("Started processing %d subtitle files", count),
		tags:    []string{"substation", "batch", "started"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyItemCompleted(ctx context.Context, title, outputPath string) error {
	if !n.batch {
		return nil
	}
	title = strings.TrimSpace(title)
	message := fmt.Sprintf("Converted: %s", title)
	if outputPath = strings.TrimSpace(outputPath); outputPath != "" {
		message = fmt.Sprintf("%s\nFile: %s", message, outputPath)
	}
	data := payload{
		title:   "Substation - Converted",
		message: message,
		tags:    []string{"substation", "item", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyBatchCompleted(ctx context.Context, processed, failed int, duration time.Duration) error {
	if !n.batch {
		return nil
	}
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}
	durationText := duration.String()
	if duration == 0 {
		durationText = "0s"
	}

	var title, message string
	if failed == 0 {
		title = "Substation - Batch Complete"
		message = fmt.Sprintf("Batch complete: %d files converted in %s", processed, durationText)
	} else {
		title = "Substation - Batch Complete (with errors)"
		message = fmt.Sprintf("Batch complete: %d succeeded, %d failed in %s", processed, failed, durationText)
	}
	data := payload{
		title:   title,
		message: message,
		tags:    []string{"substation", "batch", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	if !n.errors {
		return nil
	}
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}
	data := payload{
		title:    "Substation - Error",
		message:  builder.String(),
		tags:     []string{"substation", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Substation - Test",
		message:  "Notification system test",
		tags:     []string{"substation", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyBatchStarted(context.Context, int) error                       { return nil }
func (noopService) NotifyItemCompleted(context.Context, string, string) error           { return nil }
func (noopService) NotifyBatchCompleted(context.Context, int, int, time.Duration) error { return nil }
func (noopService) NotifyError(context.Context, error, string) error                    { return nil }
func (noopService) TestNotification(context.Context) error                              { return nil }
