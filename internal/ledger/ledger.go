package ledger

import (
	"context"
	"errors"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

var (
	ErrSubmitFailed       = errors.New("failed to submit operation to ledger")
	ErrReceiptNotFound    = errors.New("no receipt for ledger handle")
	ErrAwaitReceiptFailed = errors.New("failed to await ledger receipt")
	ErrReadBalanceFailed  = errors.New("failed to read ledger balance")
)

// Receipt is the ledger's confirmation response for a submitted operation.
type Receipt struct {
	Success     bool   `json:"success"`
	BlockHeight uint64 `json:"block_height"`
	BlockHash   string `json:"block_hash"`
	Position    uint64 `json:"position"`
	Cost        int64  `json:"cost"`
	Detail      string `json:"detail"`
}

// Gateway is the thin adapter over the external ledger. Submit and
// AwaitReceipt may block; both honour context cancellation. Errors are
// converted to failed transaction records by the lifecycle manager, never
// propagated to callers of Initiate.
type Gateway interface {
	// Submit broadcasts the operation and returns an opaque ledger handle.
	Submit(ctx context.Context, kind store.Kind, payload store.Payload) (string, error)
	// AwaitReceipt blocks until the handle has the requested number of
	// confirmations, the ledger reports failure, or ctx expires.
	AwaitReceipt(ctx context.Context, handle string, confirmations uint64) (*Receipt, error)
	// ReadBalance returns the confirmed balance of an escrow account. The
	// ledger is the source of truth for remaining escrow; cached sums are
	// never trusted for payout authorization.
	ReadBalance(ctx context.Context, account string) (int64, error)
}
