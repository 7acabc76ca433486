package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/admesh/txflow/internal/ledger"
	"github.com/admesh/txflow/internal/lifecycle"
	"github.com/admesh/txflow/internal/lifecycle/mocks"
	"github.com/admesh/txflow/internal/lifecycle/store"
)

func TestRetrySweepResumesFailedTransactions(t *testing.T) {
	failed := &store.Transaction{
		ID:           "tx-sweep-1",
		Kind:         store.KindCampaignFunding,
		Status:       store.StatusFailed,
		LastError:    "ledger unavailable",
		Attempt:      0,
		AttemptLimit: 3,
		Payload:      fundingPayload(),
	}

	sweeps := make(chan struct{}, 10)

	storeMock := &mocks.TransactionStoreMock{
		GetRetryableFunc: func(_ context.Context, _ time.Duration, _ time.Time, _ int64) ([]*store.Transaction, error) {
			select {
			case sweeps <- struct{}{}:
			default:
			}
			// the record is returned once, subsequent sweeps find nothing
			if len(sweeps) == 1 {
				return []*store.Transaction{failed}, nil
			}
			return nil, nil
		},
		SetRetryingFunc: func(_ context.Context, id string) (*store.Transaction, error) {
			return &store.Transaction{
				ID:           id,
				Kind:         store.KindCampaignFunding,
				Status:       store.StatusPending,
				Attempt:      1,
				AttemptLimit: 3,
				Payload:      fundingPayload(),
			}, nil
		},
		SetSubmittedFunc: func(_ context.Context, id string, ledgerHandle string) (*store.Transaction, error) {
			return &store.Transaction{
				ID:           id,
				Kind:         store.KindCampaignFunding,
				Status:       store.StatusSubmitted,
				LedgerHandle: ledgerHandle,
				Attempt:      1,
				AttemptLimit: 3,
				Payload:      fundingPayload(),
			}, nil
		},
	}

	gatewayMock := &mocks.GatewayMock{
		SubmitFunc: func(_ context.Context, _ store.Kind, _ store.Payload) (string, error) {
			return "lh-sweep-1", nil
		},
		AwaitReceiptFunc: func(ctx context.Context, _ string, _ uint64) (*ledger.Receipt, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	m := newRecoveredManager(t, storeMock, gatewayMock,
		lifecycle.WithSweepInterval(10*time.Millisecond),
	)

	m.Start()

	require.Eventually(t, func() bool {
		return len(storeMock.SetSubmittedCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	m.Shutdown()

	retryCalls := storeMock.SetRetryingCalls()
	require.Len(t, retryCalls, 1)
	require.Equal(t, "tx-sweep-1", retryCalls[0].ID)

	submitCalls := gatewayMock.SubmitCalls()
	require.Len(t, submitCalls, 1)
	require.Equal(t, fundingPayload(), submitCalls[0].Payload)
}

func TestRetrySkipsRecordsNoLongerRetryable(t *testing.T) {
	failed := &store.Transaction{
		ID:           "tx-sweep-2",
		Kind:         store.KindCampaignFunding,
		Status:       store.StatusFailed,
		Attempt:      1,
		AttemptLimit: 3,
		Payload:      fundingPayload(),
	}

	retried := make(chan struct{})

	storeMock := &mocks.TransactionStoreMock{
		GetRetryableFunc: func(_ context.Context, _ time.Duration, _ time.Time, _ int64) ([]*store.Transaction, error) {
			return []*store.Transaction{failed}, nil
		},
		// a racing timer already moved the record back to pending
		SetRetryingFunc: func(_ context.Context, _ string) (*store.Transaction, error) {
			select {
			case <-retried:
			default:
				close(retried)
			}
			return nil, store.ErrStatusConflict
		},
	}

	gatewayMock := &mocks.GatewayMock{}

	m := newRecoveredManager(t, storeMock, gatewayMock,
		lifecycle.WithSweepInterval(10*time.Millisecond),
	)

	m.Start()

	select {
	case <-retried:
	case <-time.After(time.Second):
		t.Fatal("sweep never attempted the retry")
	}

	m.Shutdown()

	// the lost race must not reach the ledger
	require.Empty(t, gatewayMock.SubmitCalls())
}
