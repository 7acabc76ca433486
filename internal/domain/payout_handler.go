package domain

import (
	"context"
	"log/slog"
	"time"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

// PayoutHandler credits the payout ledger once a batch is confirmed: line
// items are flagged paid and the campaign's cumulative spend is incremented
// by the batch total. The spend increment is keyed on the transaction id in
// the domain store, so a crash right after confirmation cannot
// double-increment.
type PayoutHandler struct {
	campaigns CampaignStore
	payouts   PayoutStore
	logger    *slog.Logger
	now       func() time.Time
}

func NewPayoutHandler(campaigns CampaignStore, payouts PayoutStore, logger *slog.Logger) *PayoutHandler {
	return &PayoutHandler{
		campaigns: campaigns,
		payouts:   payouts,
		logger:    logger.With(slog.String("handler", string(store.KindPayoutBatch))),
		now:       time.Now,
	}
}

func (h *PayoutHandler) Kind() store.Kind {
	return store.KindPayoutBatch
}

func (h *PayoutHandler) OnConfirmed(ctx context.Context, tx *store.Transaction) error {
	if tx.Status != store.StatusConfirmed {
		return ErrNotConfirmed
	}

	payload, ok := tx.Payload.(store.PayoutBatchPayload)
	if !ok {
		return ErrWrongPayloadType
	}

	// items first: MarkItemsPaid only touches paid = FALSE rows, so a replay
	// after a crash between the two writes completes the unpaid remainder
	// instead of being swallowed by the spend guard
	paid, err := h.payouts.MarkItemsPaid(ctx, tx.ID, h.now())
	if err != nil {
		return err
	}

	applied, err := h.campaigns.AddSpend(ctx, payload.CampaignID, tx.ID, payload.Total())
	if err != nil {
		return err
	}

	if !applied {
		h.logger.Info("payout already applied", slog.String("campaign", payload.CampaignID), slog.String("tx", tx.ID))
		return nil
	}

	h.logger.Info("payout batch credited",
		slog.String("campaign", payload.CampaignID),
		slog.Int64("total", payload.Total()),
		slog.Int64("items", paid),
	)

	return nil
}
