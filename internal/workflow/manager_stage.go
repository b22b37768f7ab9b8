package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"substation/internal/logging"
	"substation/internal/queue"
)

func (m *Manager) processItem(ctx context.Context, item *queue.Item) error {
	stg, ok := m.stageByStart[item.Status]
	if !ok {
		m.logger.Warn("no stage configured for status", logging.String("status", string(item.Status)))
		return nil
	}

	requestID := uuid.NewString()
	stageCtx := logging.WithRequestID(logging.WithStage(logging.WithItemID(ctx, item.ID), stg.name), requestID)
	stageLogger := logging.WithContext(stageCtx, m.logger)

	item.Status = stg.processingStatus
	item.ErrorMessage = ""
	if err := m.store.Update(stageCtx, item); err != nil {
		wrapped := fmt.Errorf("persist processing transition: %w", err)
		stageLogger.Error("failed to transition item to processing", logging.Error(wrapped))
		m.setLastError(wrapped)
		return wrapped
	}
	m.setLastItem(item)

	return m.executeStage(stageCtx, stageLogger, stg, item)
}

func (m *Manager) executeStage(ctx context.Context, stageLogger *slog.Logger, stg pipelineStage, item *queue.Item) error {
	stageStart := time.Now()
	stageLogger.Info("stage started",
		logging.String("title", strings.TrimSpace(item.Title)),
		logging.String("source_file", strings.TrimSpace(item.SourcePath)),
	)

	handler := stg.handler
	if handler == nil {
		err := fmt.Errorf("stage %s missing handler", stg.name)
		m.failItem(ctx, stageLogger, stg.name, item, err)
		return err
	}

	if err := handler.Prepare(ctx, item); err != nil {
		m.failItem(ctx, stageLogger, stg.name, item, err)
		return err
	}

	if err := handler.Execute(ctx, item); err != nil {
		if errors.Is(err, context.Canceled) {
			stageLogger.Debug("stage interrupted by shutdown")
			return err
		}
		m.failItem(ctx, stageLogger, stg.name, item, err)
		return err
	}

	item.Status = stg.doneStatus
	if item.Status == queue.StatusCompleted {
		if item.ProgressPercent < 100 {
			item.ProgressPercent = 100
		}
		m.processed++
	}
	if err := m.store.Update(ctx, item); err != nil {
		wrapped := fmt.Errorf("persist stage result: %w", err)
		stageLogger.Error("failed to persist stage result", logging.Error(wrapped))
		m.setLastError(wrapped)
		return wrapped
	}
	stageLogger.Info("stage completed",
		logging.String("next_status", string(item.Status)),
		logging.Duration("stage_duration", time.Since(stageStart)),
	)
	m.setLastItem(item)

	if item.Status == queue.StatusCompleted {
		if err := m.notifier.NotifyItemCompleted(ctx, item.Title, item.OutputPath); err != nil {
			stageLogger.Debug("item completion notification failed", logging.Error(err))
		}
	}
	return nil
}

func (m *Manager) failItem(ctx context.Context, stageLogger *slog.Logger, stageName string, item *queue.Item, cause error) {
	m.setLastError(cause)
	m.failed++
	item.SetFailed(cause.Error())
	stageLogger.Error("stage failed",
		logging.String(logging.FieldStage, stageName),
		logging.Error(cause),
	)
	if err := m.store.Update(ctx, item); err != nil {
		stageLogger.Error("failed to persist stage failure", logging.Error(err))
	}
	m.setLastItem(item)
	if err := m.notifier.NotifyError(ctx, cause, item.Title); err != nil {
		stageLogger.Debug("error notification failed", logging.Error(err))
	}
}
