package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

// backoffDelay returns the delay before the retry following the given failed
// attempt: base * 2^attempt.
func (m *Manager) backoffDelay(attempt int) time.Duration {
	return m.retryBase * (1 << attempt)
}

// scheduleRetry arms an in-process timer for the record's next attempt. The
// periodic sweep picks up anything this timer misses, e.g. when the process
// restarts between scheduling and firing.
func (m *Manager) scheduleRetry(tx *store.Transaction) {
	delay := m.backoffDelay(tx.Attempt)

	m.logger.Info("retry scheduled",
		slog.String("id", tx.ID),
		slog.Int("attempt", tx.Attempt),
		slog.Duration("delay", delay),
	)

	m.waitGroup.Add(1)

	go func() {
		defer m.waitGroup.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-m.ctx.Done():
			return
		case <-timer.C:
			m.retry(m.ctx, tx.ID)
		}
	}()
}

// retry moves a failed record back to pending and re-runs the submission path
// with the stored payload. The conditional failed -> pending transition
// guarantees that a racing timer and sweep cannot both resubmit.
func (m *Manager) retry(ctx context.Context, id string) {
	updated, err := m.store.SetRetrying(ctx, id)
	if errors.Is(err, store.ErrStatusConflict) {
		m.logger.Debug("retry skipped, transaction no longer retryable", slog.String("id", id))
		return
	}
	if err != nil {
		m.logger.Error("failed to move transaction back to pending", slog.String("id", id), slog.String("err", err.Error()))
		return
	}

	m.invalidateStatus(updated.ID)
	m.publishStatus(updated)

	m.logger.Info("retrying transaction",
		slog.String("id", updated.ID),
		slog.String("kind", string(updated.Kind)),
		slog.Int("attempt", updated.Attempt),
	)

	m.submit(ctx, updated)
}

// startRetrySweep periodically scans the store for failed records past their
// backoff window and resumes them, making retry scheduling itself
// crash-tolerant.
func (m *Manager) startRetrySweep() {
	ticker := time.NewTicker(m.sweepInterval)
	m.waitGroup.Add(1)

	go func() {
		defer m.waitGroup.Done()

		for {
			select {
			case <-m.ctx.Done():
				return
			case <-ticker.C:
				due, err := m.store.GetRetryable(m.ctx, m.retryBase, m.now(), retryBatchSize)
				if err != nil {
					m.logger.Error("retry sweep failed", slog.String("err", err.Error()))
					continue
				}

				if len(due) == 0 {
					continue
				}

				m.logger.Info("retry sweep resuming transactions", slog.Int("number", len(due)))

				for _, tx := range due {
					m.retry(m.ctx, tx.ID)
				}
			}
		}
	}()
}
