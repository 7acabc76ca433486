package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/admesh/txflow/internal/cache"
	"github.com/admesh/txflow/internal/domain"
	"github.com/admesh/txflow/internal/ledger"
	"github.com/admesh/txflow/internal/lifecycle/store"
	"github.com/admesh/txflow/internal/mq"
	"github.com/admesh/txflow/internal/tracing"
)

const (
	retryBaseDefault      = 30 * time.Second
	sweepIntervalDefault  = 60 * time.Second
	receiptTimeoutDefault = 10 * time.Minute
	submitTimeoutDefault  = 30 * time.Second
	confirmationsDefault  = uint64(6)
	statusCacheTTLDefault = 10 * time.Second

	adoptBatchSize = int64(1000)
	retryBatchSize = int64(500)
)

var (
	ErrStoreNil       = errors.New("transaction store cannot be nil")
	ErrGatewayNil     = errors.New("ledger gateway cannot be nil")
	ErrNotRecovered   = errors.New("recover must run before new work is accepted")
	ErrInvalidKind    = errors.New("invalid transaction kind")
	ErrInvalidPayload = errors.New("payload does not match transaction kind")
	ErrHandlerMissing = errors.New("no handler registered for transaction kind")

	errInsufficientEscrow = errors.New("payout batch exceeds remaining escrow balance")
)

// EventPublisher receives status transitions and operational alerts.
type EventPublisher interface {
	PublishStatus(event *mq.StatusEvent) error
	PublishAlert(event *mq.AlertEvent) error
}

// Manager orchestrates the lifecycle of ledger-affecting transactions:
// submission, confirmation monitoring, retry scheduling and crash recovery.
// One instance is constructed at process start and shared by reference;
// Recover must be called exactly once before Initiate accepts work.
type Manager struct {
	store      store.TransactionStore
	gateway    ledger.Gateway
	cacheStore cache.Store
	publisher  EventPublisher
	handlers   map[store.Kind]domain.Handler
	logger     *slog.Logger
	hostname   string
	now        func() time.Time

	retryBase      time.Duration
	sweepInterval  time.Duration
	receiptTimeout time.Duration
	submitTimeout  time.Duration
	confirmations  uint64
	statusCacheTTL time.Duration

	recovered atomic.Bool
	waitGroup *sync.WaitGroup

	cancelAll context.CancelFunc
	ctx       context.Context

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

type Option func(*Manager)

func New(s store.TransactionStore, g ledger.Gateway, opts ...Option) (*Manager, error) {
	if s == nil {
		return nil, ErrStoreNil
	}

	if g == nil {
		return nil, ErrGatewayNil
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		store:      s,
		gateway:    g,
		cacheStore: cache.NewMemoryStore(statusCacheTTLDefault, time.Minute),
		handlers:   map[store.Kind]domain.Handler{},
		hostname:   hostname,
		now:        time.Now,

		retryBase:      retryBaseDefault,
		sweepInterval:  sweepIntervalDefault,
		receiptTimeout: receiptTimeoutDefault,
		submitTimeout:  submitTimeoutDefault,
		confirmations:  confirmationsDefault,
		statusCacheTTL: statusCacheTTLDefault,

		waitGroup: &sync.WaitGroup{},
	}

	m.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(slog.String("service", "lifecycle"))

	for _, opt := range opts {
		opt(m)
	}

	ctx, cancelAll := context.WithCancel(context.Background())
	m.cancelAll = cancelAll
	m.ctx = ctx

	return m, nil
}

// Start launches the background retry sweep. Call after Recover.
func (m *Manager) Start() {
	m.startRetrySweep()
}

// Shutdown stops all monitors and background work, then releases this
// instance's record locks so another instance can adopt them.
func (m *Manager) Shutdown() {
	m.logger.Info("shutting down lifecycle manager")

	if m.cancelAll != nil {
		m.cancelAll()
	}

	m.waitGroup.Wait()

	unlocked, err := m.store.SetUnlockedByName(context.Background(), m.hostname)
	if err != nil {
		m.logger.Error("failed to unlock records", slog.String("err", err.Error()))
		return
	}

	m.logger.Info("unlocked records", slog.Int64("number", unlocked))
}

// Initiate persists a pending transaction for the given kind and payload,
// attempts immediate submission and returns the record with whatever status
// the attempt achieved. Gateway errors never escape: they are recorded on the
// returned record and retried in the background.
func (m *Manager) Initiate(ctx context.Context, kind store.Kind, payload store.Payload) (*store.Transaction, error) {
	var err error
	ctx, span := tracing.StartTracing(ctx, "Initiate", m.tracingEnabled, m.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if !m.recovered.Load() {
		return nil, ErrNotRecovered
	}

	if !kind.Valid() {
		err = errors.Join(ErrInvalidKind, fmt.Errorf("kind: %s", kind))
		return nil, err
	}

	if payload == nil || payload.PayloadKind() != kind {
		err = ErrInvalidPayload
		return nil, err
	}

	now := m.now()
	tx := &store.Transaction{
		ID:           uuid.NewString(),
		Kind:         kind,
		Status:       store.StatusPending,
		AttemptLimit: kind.AttemptLimit(),
		Payload:      payload,
		LockedBy:     m.hostname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = m.store.Insert(ctx, tx)
	if err != nil {
		return nil, err
	}

	// payout line items are persisted before submission so a crash between
	// record creation and broadcast leaves a reconstructable batch
	if batch, ok := payload.(store.PayoutBatchPayload); ok {
		items := make([]*store.PayoutItem, len(batch.Recipients))
		for i, r := range batch.Recipients {
			items[i] = &store.PayoutItem{
				ID:            uuid.NewString(),
				TransactionID: tx.ID,
				Recipient:     r.Recipient,
				Role:          r.Role,
				Amount:        r.Amount,
				EventIDs:      r.EventIDs,
			}
		}

		err = m.store.InsertPayoutItems(ctx, items)
		if err != nil {
			return nil, err
		}
	}

	return m.submit(ctx, tx), nil
}

// GetStatus returns the current record, read through the status cache to
// absorb dashboard polling.
func (m *Manager) GetStatus(ctx context.Context, id string) (*store.Transaction, error) {
	if cached, err := m.cacheStore.Get(statusCacheKey(id)); err == nil {
		tx, decodeErr := decodeCachedTransaction(cached)
		if decodeErr == nil {
			return tx, nil
		}
		m.logger.Warn("failed to decode cached transaction", slog.String("id", id), slog.String("err", decodeErr.Error()))
	}

	tx, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, err := encodeCachedTransaction(tx); err == nil {
		if err = m.cacheStore.Set(statusCacheKey(id), encoded, m.statusCacheTTL); err != nil {
			m.logger.Warn("failed to cache transaction", slog.String("id", id), slog.String("err", err.Error()))
		}
	}

	return tx, nil
}

// submit runs one submission attempt for a pending record and returns the
// updated record. All failures funnel through fail(), which applies the retry
// policy.
func (m *Manager) submit(ctx context.Context, tx *store.Transaction) *store.Transaction {
	var err error
	ctx, span := tracing.StartTracing(ctx, "submit", m.tracingEnabled, m.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	// the ledger's own balance authorizes a payout, never the cached sums:
	// another in-flight release may have drained the escrow since
	if batch, ok := tx.Payload.(store.PayoutBatchPayload); ok {
		var balance int64
		balance, err = m.gateway.ReadBalance(ctx, batch.EscrowAccount)
		if err != nil {
			return m.fail(ctx, tx, fmt.Sprintf("read balance: %v", err))
		}

		if batch.Total() > balance {
			err = errInsufficientEscrow
			return m.fail(ctx, tx, fmt.Sprintf("%v: batch total %d, balance %d", errInsufficientEscrow, batch.Total(), balance))
		}
	}

	submitCtx, cancel := context.WithTimeout(ctx, m.submitTimeout)
	defer cancel()

	handle, err := m.gateway.Submit(submitCtx, tx.Kind, tx.Payload)
	if err != nil {
		return m.fail(ctx, tx, fmt.Sprintf("submit: %v", err))
	}

	updated, err := m.store.SetSubmitted(ctx, tx.ID, handle)
	if err != nil {
		// the operation is on the ledger but the record could not be moved
		// to submitted; surface it instead of re-submitting blindly
		m.logger.Error("failed to mark transaction submitted", slog.String("id", tx.ID), slog.String("err", err.Error()))
		m.publishAlert(tx, mq.AlertStatusUpdateFailed, fmt.Sprintf("submitted on ledger as %s but status update failed: %v", handle, err))
		return tx
	}

	m.invalidateStatus(updated.ID)
	m.publishStatus(updated)

	m.logger.Debug("transaction submitted", slog.String("id", updated.ID), slog.String("ledgerHandle", handle))

	m.startMonitor(updated)

	return updated
}

// startMonitor spawns the confirmation watch for a submitted record. Each
// monitor is independent; any number can run concurrently.
func (m *Manager) startMonitor(tx *store.Transaction) {
	m.waitGroup.Add(1)

	go func() {
		defer m.waitGroup.Done()

		receiptCtx, cancel := context.WithTimeout(m.ctx, m.receiptTimeout)
		defer cancel()

		receipt, err := m.gateway.AwaitReceipt(receiptCtx, tx.LedgerHandle, m.confirmations)

		// on shutdown the record stays submitted; recovery re-watches it in
		// the next process, it is never marked failed or re-sent
		if m.ctx.Err() != nil {
			return
		}

		if err != nil {
			m.fail(context.Background(), tx, fmt.Sprintf("await receipt: %v", err))
			return
		}

		if !receipt.Success {
			m.fail(context.Background(), tx, fmt.Sprintf("ledger reported failure: %s", receipt.Detail))
			return
		}

		m.confirm(context.Background(), tx, receipt)
	}()
}

// confirm applies the submitted -> confirmed transition and runs the domain
// handler. The conditional update is the at-most-once guard: if another
// monitor (e.g. a recovery re-attachment racing at startup) already resolved
// the record, the handler does not run again.
func (m *Manager) confirm(ctx context.Context, tx *store.Transaction, receipt *ledger.Receipt) {
	var err error
	ctx, span := tracing.StartTracing(ctx, "confirm", m.tracingEnabled, m.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	confirmation := &store.Confirmation{
		BlockHeight: receipt.BlockHeight,
		BlockHash:   receipt.BlockHash,
		Position:    receipt.Position,
		Cost:        receipt.Cost,
	}

	updated, err := m.store.SetConfirmed(ctx, tx.ID, confirmation)
	if errors.Is(err, store.ErrStatusConflict) {
		m.logger.Debug("transaction already resolved", slog.String("id", tx.ID))
		return
	}
	if err != nil {
		m.logger.Error("failed to mark transaction confirmed", slog.String("id", tx.ID), slog.String("err", err.Error()))
		return
	}

	m.invalidateStatus(updated.ID)
	m.publishStatus(updated)

	m.logger.Info("transaction confirmed",
		slog.String("id", updated.ID),
		slog.String("kind", string(updated.Kind)),
		slog.Uint64("blockHeight", confirmation.BlockHeight),
	)

	handler, ok := m.handlers[updated.Kind]
	if !ok {
		m.logger.Error("no handler for confirmed transaction", slog.String("id", updated.ID), slog.String("kind", string(updated.Kind)))
		m.publishAlert(updated, mq.AlertHandlerFailed, ErrHandlerMissing.Error())
		return
	}

	// a handler failure is an operational alert, never a rollback: the
	// ledger operation genuinely happened, re-submitting would double-spend
	err = handler.OnConfirmed(ctx, updated)
	if err != nil {
		m.logger.Error("handler failed for confirmed transaction",
			slog.String("id", updated.ID),
			slog.String("kind", string(updated.Kind)),
			slog.String("err", err.Error()),
		)
		m.publishAlert(updated, mq.AlertHandlerFailed, err.Error())
		err = nil
	}
}

// fail records the failure and schedules a retry when attempts remain,
// otherwise the record is terminally failed and an alert is raised.
func (m *Manager) fail(ctx context.Context, tx *store.Transaction, reason string) *store.Transaction {
	updated, err := m.store.SetFailed(ctx, tx.ID, reason)
	if errors.Is(err, store.ErrStatusConflict) {
		m.logger.Debug("transaction already resolved", slog.String("id", tx.ID))
		current, getErr := m.store.Get(ctx, tx.ID)
		if getErr != nil {
			return tx
		}
		return current
	}
	if err != nil {
		m.logger.Error("failed to mark transaction failed", slog.String("id", tx.ID), slog.String("err", err.Error()))
		return tx
	}

	m.invalidateStatus(updated.ID)
	m.publishStatus(updated)

	m.logger.Warn("transaction failed",
		slog.String("id", updated.ID),
		slog.String("kind", string(updated.Kind)),
		slog.Int("attempt", updated.Attempt),
		slog.String("reason", reason),
	)

	if updated.Attempt+1 < updated.AttemptLimit {
		m.scheduleRetry(updated)
		return updated
	}

	m.logger.Error("transaction attempts exhausted", slog.String("id", updated.ID), slog.String("kind", string(updated.Kind)))
	m.publishAlert(updated, mq.AlertAttemptsExhausted, reason)

	return updated
}
