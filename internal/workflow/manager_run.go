package workflow

import (
	"context"
	"errors"
	"time"

	"substation/internal/logging"
	"substation/internal/queue"
)

// RunOnce processes the queue until no startable item remains, then returns
// the number of items that completed and failed. Stage failures mark the
// item failed and move on; only queue access errors abort the run.
func (m *Manager) RunOnce(ctx context.Context) (processed, failed int, err error) {
	m.setRunning(true)
	defer m.setRunning(false)

	if reset, resetErr := m.store.ResetStuck(ctx); resetErr != nil {
		m.logger.Warn("failed to reset stuck items", logging.Error(resetErr))
	} else if reset > 0 {
		m.logger.Info("reset stuck items", logging.Int64("count", reset))
	}
	m.startBatch(ctx)

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.processed, m.failed, ctxErr
		}
		item, nextErr := m.store.NextForStatuses(ctx, m.statusOrder...)
		if nextErr != nil {
			m.setLastError(nextErr)
			return m.processed, m.failed, nextErr
		}
		if item == nil {
			break
		}
		if procErr := m.processItem(ctx, item); procErr != nil {
			if errors.Is(procErr, context.Canceled) {
				return m.processed, m.failed, procErr
			}
		}
	}
	m.finishBatch(ctx)
	return m.processed, m.failed, nil
}

// Watch runs until the context is cancelled, polling the queue for new
// items. Used by the run --watch mode.
func (m *Manager) Watch(ctx context.Context) error {
	m.setRunning(true)
	defer m.setRunning(false)

	if reset, resetErr := m.store.ResetStuck(ctx); resetErr != nil {
		m.logger.Warn("failed to reset stuck items", logging.Error(resetErr))
	} else if reset > 0 {
		m.logger.Info("reset stuck items", logging.Int64("count", reset))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item, err := m.store.NextForStatuses(ctx, m.statusOrder...)
		if err != nil {
			m.setLastError(err)
			m.logger.Error("failed to fetch next queue item", logging.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(m.cfg.Workflow.ErrorRetryInterval) * time.Second):
			}
			continue
		}
		if item == nil {
			m.finishBatch(ctx)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.pollInterval):
			}
			continue
		}
		m.startBatch(ctx)
		if err := m.processItem(ctx, item); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
		}
	}
}

func (m *Manager) startBatch(ctx context.Context) {
	if m.batchActive {
		return
	}
	pending, err := m.store.List(ctx, queue.StatusPending, queue.StatusProbed)
	if err != nil || len(pending) == 0 {
		return
	}
	m.batchActive = true
	m.batchStart = time.Now()
	m.processed = 0
	m.failed = 0
	if err := m.notifier.NotifyBatchStarted(ctx, len(pending)); err != nil {
		m.logger.Debug("batch start notification failed", logging.Error(err))
	}
}

func (m *Manager) finishBatch(ctx context.Context) {
	if !m.batchActive {
		return
	}
	m.batchActive = false
	if err := m.notifier.NotifyBatchCompleted(ctx, m.processed, m.failed, time.Since(m.batchStart)); err != nil {
		m.logger.Debug("batch completion notification failed", logging.Error(err))
	}
}
