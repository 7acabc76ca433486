package domain

import (
	"context"
	"log/slog"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

// FundingHandler activates a campaign once its escrow funding is confirmed on
// the ledger.
type FundingHandler struct {
	campaigns CampaignStore
	logger    *slog.Logger
}

func NewFundingHandler(campaigns CampaignStore, logger *slog.Logger) *FundingHandler {
	return &FundingHandler{
		campaigns: campaigns,
		logger:    logger.With(slog.String("handler", string(store.KindCampaignFunding))),
	}
}

func (h *FundingHandler) Kind() store.Kind {
	return store.KindCampaignFunding
}

func (h *FundingHandler) OnConfirmed(ctx context.Context, tx *store.Transaction) error {
	if tx.Status != store.StatusConfirmed {
		return ErrNotConfirmed
	}

	payload, ok := tx.Payload.(store.FundingPayload)
	if !ok {
		return ErrWrongPayloadType
	}

	applied, err := h.campaigns.Activate(ctx, payload.CampaignID, tx.ID, tx.LedgerHandle)
	if err != nil {
		return err
	}

	if !applied {
		h.logger.Info("funding already applied", slog.String("campaign", payload.CampaignID), slog.String("tx", tx.ID))
		return nil
	}

	h.logger.Info("campaign activated",
		slog.String("campaign", payload.CampaignID),
		slog.Int64("amount", payload.Amount),
		slog.String("ledgerHandle", tx.LedgerHandle),
	)

	return nil
}
