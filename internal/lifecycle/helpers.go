package lifecycle

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/admesh/txflow/internal/cache"
	"github.com/admesh/txflow/internal/lifecycle/store"
	"github.com/admesh/txflow/internal/mq"
)

func statusCacheKey(id string) string {
	return "tx:" + id
}

// cachedTransaction is the cache representation of a record; the payload is
// kept raw and re-tagged with the kind on decode.
type cachedTransaction struct {
	ID           string              `json:"id"`
	Kind         store.Kind          `json:"kind"`
	Status       store.Status        `json:"status"`
	LedgerHandle string              `json:"ledger_handle"`
	Confirmation *store.Confirmation `json:"confirmation,omitempty"`
	LastError    string              `json:"last_error"`
	Attempt      int                 `json:"attempt"`
	AttemptLimit int                 `json:"attempt_limit"`
	Payload      json.RawMessage     `json:"payload"`
	LockedBy     string              `json:"locked_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	ConfirmedAt  time.Time           `json:"confirmed_at"`
}

func encodeCachedTransaction(tx *store.Transaction) ([]byte, error) {
	rawPayload, err := store.EncodePayload(tx.Payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(cachedTransaction{
		ID:           tx.ID,
		Kind:         tx.Kind,
		Status:       tx.Status,
		LedgerHandle: tx.LedgerHandle,
		Confirmation: tx.Confirmation,
		LastError:    tx.LastError,
		Attempt:      tx.Attempt,
		AttemptLimit: tx.AttemptLimit,
		Payload:      rawPayload,
		LockedBy:     tx.LockedBy,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
		ConfirmedAt:  tx.ConfirmedAt,
	})
}

func decodeCachedTransaction(data []byte) (*store.Transaction, error) {
	var cached cachedTransaction
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	payload, err := store.DecodePayload(cached.Kind, cached.Payload)
	if err != nil {
		return nil, err
	}

	return &store.Transaction{
		ID:           cached.ID,
		Kind:         cached.Kind,
		Status:       cached.Status,
		LedgerHandle: cached.LedgerHandle,
		Confirmation: cached.Confirmation,
		LastError:    cached.LastError,
		Attempt:      cached.Attempt,
		AttemptLimit: cached.AttemptLimit,
		Payload:      payload,
		LockedBy:     cached.LockedBy,
		CreatedAt:    cached.CreatedAt,
		UpdatedAt:    cached.UpdatedAt,
		ConfirmedAt:  cached.ConfirmedAt,
	}, nil
}

func (m *Manager) invalidateStatus(id string) {
	err := m.cacheStore.Del(statusCacheKey(id))
	if err != nil && !errors.Is(err, cache.ErrCacheNotFound) {
		m.logger.Warn("failed to invalidate status cache", slog.String("id", id), slog.String("err", err.Error()))
	}
}

func (m *Manager) publishStatus(tx *store.Transaction) {
	if m.publisher == nil {
		return
	}

	err := m.publisher.PublishStatus(&mq.StatusEvent{
		TransactionID: tx.ID,
		Kind:          tx.Kind,
		Status:        tx.Status,
		LedgerHandle:  tx.LedgerHandle,
		LastError:     tx.LastError,
		Attempt:       tx.Attempt,
		Timestamp:     m.now(),
	})
	if err != nil {
		m.logger.Warn("failed to publish status event", slog.String("id", tx.ID), slog.String("err", err.Error()))
	}
}

func (m *Manager) publishAlert(tx *store.Transaction, reason, detail string) {
	if m.publisher == nil {
		return
	}

	err := m.publisher.PublishAlert(&mq.AlertEvent{
		TransactionID: tx.ID,
		Kind:          tx.Kind,
		Reason:        reason,
		Detail:        detail,
		Timestamp:     m.now(),
	})
	if err != nil {
		m.logger.Warn("failed to publish alert event", slog.String("id", tx.ID), slog.String("err", err.Error()))
	}
}
