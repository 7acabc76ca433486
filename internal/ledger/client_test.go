package ledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/admesh/txflow/internal/ledger"
	"github.com/admesh/txflow/internal/lifecycle/store"
)

func TestClientSubmit(t *testing.T) {
	tt := []struct {
		name       string
		statusCode int
		response   string

		expectedHandle string
		expectedError  error
	}{
		{
			name:       "success",
			statusCode: http.StatusCreated,
			response:   `{"handle":"h1"}`,

			expectedHandle: "h1",
		},
		{
			name:       "node rejects",
			statusCode: http.StatusUnprocessableEntity,
			response:   `{"error":"insufficient fee"}`,

			expectedError: ledger.ErrSubmitFailed,
		},
		{
			name:       "empty handle",
			statusCode: http.StatusOK,
			response:   `{}`,

			expectedError: ledger.ErrSubmitFailed,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/v1/operations", r.URL.Path)

				var req map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Equal(t, string(store.KindCampaignFunding), req["kind"])

				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			client := ledger.NewClient(srv.URL)

			handle, err := client.Submit(context.Background(), store.KindCampaignFunding, store.FundingPayload{CampaignID: "c1", EscrowAccount: "0xescrow", Amount: 1000})

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedHandle, handle)
		})
	}
}

func TestClientAwaitReceipt(t *testing.T) {
	t.Run("receipt appears after polling", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/receipts/h1", r.URL.Path)
			require.Equal(t, "6", r.URL.Query().Get("confirmations"))

			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			_, _ = w.Write([]byte(`{"success":true,"block_height":120,"block_hash":"0xbeef","position":4,"cost":21}`))
		}))
		defer srv.Close()

		client := ledger.NewClient(srv.URL, ledger.WithPollInterval(5*time.Millisecond))

		receipt, err := client.AwaitReceipt(context.Background(), "h1", 6)
		require.NoError(t, err)
		require.True(t, receipt.Success)
		require.Equal(t, uint64(120), receipt.BlockHeight)
		require.GreaterOrEqual(t, calls.Load(), int32(3))
	})

	t.Run("on-ledger failure is a receipt, not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"detail":"escrow exhausted"}`))
		}))
		defer srv.Close()

		client := ledger.NewClient(srv.URL, ledger.WithPollInterval(5*time.Millisecond))

		receipt, err := client.AwaitReceipt(context.Background(), "h2", 1)
		require.NoError(t, err)
		require.False(t, receipt.Success)
		require.Equal(t, "escrow exhausted", receipt.Detail)
	})

	t.Run("context deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := ledger.NewClient(srv.URL, ledger.WithPollInterval(5*time.Millisecond))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		_, err := client.AwaitReceipt(ctx, "h3", 1)
		require.ErrorIs(t, err, ledger.ErrAwaitReceiptFailed)
	})
}

func TestClientReadBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/accounts/0xescrow/balance", r.URL.Path)
		_, _ = w.Write([]byte(`{"confirmed":1500,"unconfirmed":200}`))
	}))
	defer srv.Close()

	client := ledger.NewClient(srv.URL)

	balance, err := client.ReadBalance(context.Background(), "0xescrow")
	require.NoError(t, err)
	// only the confirmed balance authorizes payouts
	require.Equal(t, int64(1500), balance)
}
