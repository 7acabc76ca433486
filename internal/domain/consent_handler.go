package domain

import (
	"context"
	"log/slog"
	"time"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

// ConsentHandler records a consent grant with the ledger hash of the
// confirmed transaction as proof.
type ConsentHandler struct {
	consents ConsentStore
	logger   *slog.Logger
	now      func() time.Time
}

func NewConsentHandler(consents ConsentStore, logger *slog.Logger) *ConsentHandler {
	return &ConsentHandler{
		consents: consents,
		logger:   logger.With(slog.String("handler", string(store.KindConsentRecord))),
		now:      time.Now,
	}
}

func (h *ConsentHandler) Kind() store.Kind {
	return store.KindConsentRecord
}

func (h *ConsentHandler) OnConfirmed(ctx context.Context, tx *store.Transaction) error {
	if tx.Status != store.StatusConfirmed {
		return ErrNotConfirmed
	}

	payload, ok := tx.Payload.(store.ConsentPayload)
	if !ok {
		return ErrWrongPayloadType
	}

	grant := &ConsentGrant{
		UserID:        payload.UserID,
		CampaignID:    payload.CampaignID,
		Scope:         payload.Scope,
		TransactionID: tx.ID,
		LedgerRef:     tx.LedgerHandle,
		GrantedAt:     h.now(),
	}

	inserted, err := h.consents.InsertGrant(ctx, grant)
	if err != nil {
		return err
	}

	if !inserted {
		h.logger.Info("consent grant already recorded", slog.String("user", payload.UserID), slog.String("tx", tx.ID))
		return nil
	}

	h.logger.Info("consent grant recorded",
		slog.String("user", payload.UserID),
		slog.String("campaign", payload.CampaignID),
		slog.String("scope", payload.Scope),
	)

	return nil
}
