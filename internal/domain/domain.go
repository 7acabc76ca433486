package domain

import (
	"context"
	"errors"
	"time"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

var (
	ErrWrongPayloadType = errors.New("payload type does not match handler kind")
	ErrNotConfirmed     = errors.New("transaction is not confirmed")
)

// Handler applies the local side effect of one transaction kind after ledger
// confirmation. OnConfirmed must be idempotent: re-running it for the same
// transaction id (crash between confirmation and side effect) must not apply
// the financial effect twice.
type Handler interface {
	Kind() store.Kind
	OnConfirmed(ctx context.Context, tx *store.Transaction) error
}

// CampaignStore is the campaign collaborator. Both writes are conditional on
// the transaction id not having been applied yet; they return false when the
// effect was already applied.
type CampaignStore interface {
	Activate(ctx context.Context, campaignID, transactionID, ledgerRef string) (bool, error)
	AddSpend(ctx context.Context, campaignID, transactionID string, amount int64) (bool, error)
}

type PayoutStore interface {
	// MarkItemsPaid flags the batch's unpaid line items as paid and returns
	// how many rows changed. Already-paid rows are left untouched.
	MarkItemsPaid(ctx context.Context, transactionID string, paidAt time.Time) (int64, error)
}

type ConsentGrant struct {
	UserID        string
	CampaignID    string
	Scope         string
	TransactionID string
	LedgerRef     string
	GrantedAt     time.Time
}

type ConsentStore interface {
	// InsertGrant records the grant, returning false when a grant for the
	// transaction id already exists.
	InsertGrant(ctx context.Context, grant *ConsentGrant) (bool, error)
}
