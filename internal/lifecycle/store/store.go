package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("transaction could not be found")
	// ErrStatusConflict is returned by conditional updates when the record is
	// no longer in the expected status. Callers treat it as a lost race, not
	// a failure.
	ErrStatusConflict = errors.New("transaction not in expected status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

type Kind string

const (
	KindCampaignFunding Kind = "campaign_funding"
	KindPayoutBatch     Kind = "payout_batch"
	KindConsentRecord   Kind = "consent_record"
)

func (k Kind) Valid() bool {
	switch k {
	case KindCampaignFunding, KindPayoutBatch, KindConsentRecord:
		return true
	}
	return false
}

// AttemptLimit returns the submission attempt ceiling for the kind. Payouts
// get more attempts because an unpaid participant is worse than a delayed
// retry.
func (k Kind) AttemptLimit() int {
	if k == KindPayoutBatch {
		return 5
	}
	return 3
}

// Confirmation carries the position and resource cost reported by the ledger
// receipt. Populated only on confirmed transactions.
type Confirmation struct {
	BlockHeight uint64 `json:"block_height"`
	BlockHash   string `json:"block_hash"`
	Position    uint64 `json:"position"`
	Cost        int64  `json:"cost"`
}

// Transaction is the durable record of one ledger-affecting operation. It is
// mutated exclusively through the conditional updates of TransactionStore;
// confirmed and failed records are kept for audit.
type Transaction struct {
	ID           string
	Kind         Kind
	Status       Status
	LedgerHandle string
	Confirmation *Confirmation
	LastError    string
	Attempt      int
	AttemptLimit int
	Payload      Payload
	LockedBy     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ConfirmedAt  time.Time
}

// PayoutItem is one recipient row of a payout batch, created before
// submission so a crash between record creation and submission still leaves a
// reconstructable batch.
type PayoutItem struct {
	ID            string
	TransactionID string
	Recipient     string
	Role          string
	Amount        int64
	EventIDs      []string
	Paid          bool
	PaidAt        time.Time
}

type TransactionStore interface {
	Insert(ctx context.Context, tx *Transaction) error
	InsertPayoutItems(ctx context.Context, items []*PayoutItem) error
	Get(ctx context.Context, id string) (*Transaction, error)
	GetPayoutItems(ctx context.Context, transactionID string) ([]*PayoutItem, error)

	// Conditional status transitions. Each applies atomically on the primary
	// key and returns ErrStatusConflict when the record is not in the
	// expected source status, so two concurrent monitors can never both
	// apply a terminal transition.
	SetSubmitted(ctx context.Context, id string, ledgerHandle string) (*Transaction, error)
	SetConfirmed(ctx context.Context, id string, confirmation *Confirmation) (*Transaction, error)
	SetFailed(ctx context.Context, id string, reason string) (*Transaction, error)
	SetRetrying(ctx context.Context, id string) (*Transaction, error)

	// AdoptUnresolved claims pending and submitted records that are unlocked
	// or already locked by this instance, locking them to lockedBy.
	AdoptUnresolved(ctx context.Context, lockedBy string, limit int64, offset int64) ([]*Transaction, error)
	// GetRetryable returns failed records with attempts remaining whose
	// backoff window (base * 2^attempt since the last update) has elapsed.
	GetRetryable(ctx context.Context, base time.Duration, now time.Time, limit int64) ([]*Transaction, error)
	SetUnlockedByName(ctx context.Context, lockedBy string) (int64, error)

	ClearAudit(ctx context.Context, retentionDays int32) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
