package queue

import (
	"context"
	"fmt"
	"time"
)

// Stats returns a count of items grouped by status.
func (s *Store) Stats(ctx context.Context) (map[Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM queue_items GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("queue stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

// Health aggregates queue state for diagnostic output.
func (s *Store) Health(ctx context.Context) (HealthSummary, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return HealthSummary{}, err
	}
	health := HealthSummary{}
	for status, count := range stats {
		health.Total += count
		switch status {
		case StatusPending:
			health.Pending += count
		case StatusFailed:
			health.Failed += count
		case StatusCompleted:
			health.Completed += count
		default:
			if IsProcessingStatus(status) {
				health.Processing += count
			}
		}
	}
	return health, nil
}

// RetryFailed resets all failed items to pending so the workflow picks them
// up again. Returns the number of items reset.
func (s *Store) RetryFailed(ctx context.Context) (int64, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.execWithRetry(
		ctx,
		`UPDATE queue_items
         SET status = ?, error_message = NULL, progress_stage = NULL,
             progress_percent = 0, progress_message = NULL, updated_at = ?
         WHERE status = ?`,
		StatusPending,
		timestamp,
		StatusFailed,
	)
	if err != nil {
		return 0, fmt.Errorf("retry failed: %w", err)
	}
	return res.RowsAffected()
}

// ResetStuck rolls in-flight items back to the state that re-runs their
// stage. Used at startup after an unclean shutdown.
func (s *Store) ResetStuck(ctx context.Context) (int64, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	var total int64
	for _, transition := range stageRollbackTransitions {
		res, err := s.execWithRetry(
			ctx,
			`UPDATE queue_items
             SET status = ?, progress_stage = NULL, progress_percent = 0,
                 progress_message = NULL, updated_at = ?
             WHERE status = ?`,
			transition.to,
			timestamp,
			transition.from,
		)
		if err != nil {
			return total, fmt.Errorf("reset stuck %s: %w", transition.from, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("rows affected: %w", err)
		}
		total += affected
	}
	return total, nil
}
