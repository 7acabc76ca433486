package lifecycle_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admesh/txflow/internal/ledger"
	"github.com/admesh/txflow/internal/lifecycle"
	"github.com/admesh/txflow/internal/lifecycle/mocks"
	"github.com/admesh/txflow/internal/lifecycle/store"
)

func TestRecover(t *testing.T) {
	submitted := &store.Transaction{
		ID:           "tx-recover-1",
		Kind:         store.KindCampaignFunding,
		Status:       store.StatusSubmitted,
		LedgerHandle: "lh-a",
		AttemptLimit: 3,
		Payload:      fundingPayload(),
		LockedBy:     "txflow-1",
	}

	pending := &store.Transaction{
		ID:           "tx-recover-2",
		Kind:         store.KindConsentRecord,
		Status:       store.StatusPending,
		AttemptLimit: 3,
		Payload:      store.ConsentPayload{UserID: "usr-1", CampaignID: "cmp-1", Scope: "attribution"},
		LockedBy:     "txflow-1",
	}

	storeMock := &mocks.TransactionStoreMock{
		AdoptUnresolvedFunc: func(_ context.Context, _ string, _ int64, offset int64) ([]*store.Transaction, error) {
			if offset == 0 {
				return []*store.Transaction{submitted, pending}, nil
			}
			return nil, nil
		},
		SetSubmittedFunc: func(_ context.Context, id string, ledgerHandle string) (*store.Transaction, error) {
			return &store.Transaction{
				ID:           id,
				Kind:         store.KindConsentRecord,
				Status:       store.StatusSubmitted,
				LedgerHandle: ledgerHandle,
				AttemptLimit: 3,
				Payload:      pending.Payload,
			}, nil
		},
		SetUnlockedByNameFunc: func(_ context.Context, _ string) (int64, error) {
			return 2, nil
		},
	}

	gatewayMock := &mocks.GatewayMock{
		SubmitFunc: func(_ context.Context, _ store.Kind, _ store.Payload) (string, error) {
			return "lh-b", nil
		},
		AwaitReceiptFunc: func(ctx context.Context, _ string, _ uint64) (*ledger.Receipt, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	m, err := lifecycle.New(storeMock, gatewayMock,
		lifecycle.WithLogger(testLogger),
		lifecycle.WithHostname("txflow-1"),
	)
	require.NoError(t, err)

	require.NoError(t, m.Recover(context.Background()))

	// both adopted records end up watched: the submitted one directly, the
	// pending one after its re-submission
	require.Eventually(t, func() bool {
		return len(gatewayMock.AwaitReceiptCalls()) == 2
	}, time.Second, 10*time.Millisecond)

	m.Shutdown()

	// the submitted record was re-watched, never re-sent
	submitCalls := gatewayMock.SubmitCalls()
	require.Len(t, submitCalls, 1)
	assert.Equal(t, store.KindConsentRecord, submitCalls[0].Kind)

	watchedHandles := make(map[string]bool)
	for _, call := range gatewayMock.AwaitReceiptCalls() {
		watchedHandles[call.Handle] = true
	}
	assert.True(t, watchedHandles["lh-a"])
	assert.True(t, watchedHandles["lh-b"])

	adoptCalls := storeMock.AdoptUnresolvedCalls()
	require.Len(t, adoptCalls, 2)
	assert.Equal(t, "txflow-1", adoptCalls[0].LockedBy)
	assert.Equal(t, int64(0), adoptCalls[0].Offset)
}

func TestRecoverAdoptsEveryRecordAcrossPages(t *testing.T) {
	// one more pending record than a single adoption page holds; every failed
	// re-submission leaves the pending|submitted set the store paginates
	// over, which must not shift later pages past unadopted records
	const total = 1001

	var mu sync.Mutex
	status := make(map[string]store.Status, total)
	ids := make([]string, 0, total)
	for i := 0; i < total; i++ {
		id := fmt.Sprintf("tx-rec-%04d", i)
		ids = append(ids, id)
		status[id] = store.StatusPending
	}

	storeMock := &mocks.TransactionStoreMock{
		AdoptUnresolvedFunc: func(_ context.Context, _ string, limit int64, offset int64) ([]*store.Transaction, error) {
			mu.Lock()
			defer mu.Unlock()

			var unresolved []*store.Transaction
			for _, id := range ids {
				if status[id] != store.StatusPending && status[id] != store.StatusSubmitted {
					continue
				}
				unresolved = append(unresolved, &store.Transaction{
					ID:           id,
					Kind:         store.KindCampaignFunding,
					Status:       status[id],
					AttemptLimit: 1,
					Payload:      fundingPayload(),
					LockedBy:     "txflow-1",
				})
			}

			if offset >= int64(len(unresolved)) {
				return nil, nil
			}
			end := offset + limit
			if end > int64(len(unresolved)) {
				end = int64(len(unresolved))
			}
			return unresolved[offset:end], nil
		},
		SetFailedFunc: func(_ context.Context, id string, reason string) (*store.Transaction, error) {
			mu.Lock()
			defer mu.Unlock()

			status[id] = store.StatusFailed
			return &store.Transaction{
				ID:           id,
				Kind:         store.KindCampaignFunding,
				Status:       store.StatusFailed,
				LastError:    reason,
				AttemptLimit: 1,
				Payload:      fundingPayload(),
			}, nil
		},
	}

	gatewayMock := &mocks.GatewayMock{
		SubmitFunc: func(_ context.Context, _ store.Kind, _ store.Payload) (string, error) {
			return "", errors.New("ledger unavailable")
		},
	}

	m, err := lifecycle.New(storeMock, gatewayMock,
		lifecycle.WithLogger(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		lifecycle.WithHostname("txflow-1"),
	)
	require.NoError(t, err)

	require.NoError(t, m.Recover(context.Background()))

	// every pending record got exactly one re-submission attempt and ended up
	// terminally failed, none was skipped
	require.Len(t, gatewayMock.SubmitCalls(), total)

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		require.Equal(t, store.StatusFailed, status[id], id)
	}
}

func TestRecoverPropagatesStoreError(t *testing.T) {
	storeMock := &mocks.TransactionStoreMock{
		AdoptUnresolvedFunc: func(_ context.Context, _ string, _ int64, _ int64) ([]*store.Transaction, error) {
			return nil, errors.New("connection lost")
		},
	}

	m, err := lifecycle.New(storeMock, &mocks.GatewayMock{}, lifecycle.WithLogger(testLogger))
	require.NoError(t, err)

	err = m.Recover(context.Background())
	require.ErrorContains(t, err, "connection lost")

	// a failed recovery keeps the manager closed for new work
	_, err = m.Initiate(context.Background(), store.KindCampaignFunding, fundingPayload())
	require.ErrorIs(t, err, lifecycle.ErrNotRecovered)
}
