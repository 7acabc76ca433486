package mq

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

type natsConnStub struct {
	published map[string][][]byte
	err       error
	drained   bool
	closed    bool
}

func (s *natsConnStub) Publish(subj string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.published == nil {
		s.published = map[string][][]byte{}
	}
	s.published[subj] = append(s.published[subj], data)
	return nil
}

func (s *natsConnStub) Drain() error { s.drained = true; return nil }
func (s *natsConnStub) Close()       { s.closed = true }

func TestPublisher(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("publish status", func(t *testing.T) {
		conn := &natsConnStub{}
		publisher := NewPublisher(conn, logger)

		err := publisher.PublishStatus(&StatusEvent{
			TransactionID: "tx-1",
			Kind:          store.KindCampaignFunding,
			Status:        store.StatusConfirmed,
			LedgerHandle:  "h1",
			Timestamp:     time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		require.Len(t, conn.published[StatusTopic], 1)

		var event StatusEvent
		require.NoError(t, json.Unmarshal(conn.published[StatusTopic][0], &event))
		require.Equal(t, "tx-1", event.TransactionID)
		require.Equal(t, store.StatusConfirmed, event.Status)
	})

	t.Run("publish alert", func(t *testing.T) {
		conn := &natsConnStub{}
		publisher := NewPublisher(conn, logger)

		err := publisher.PublishAlert(&AlertEvent{
			TransactionID: "tx-2",
			Kind:          store.KindPayoutBatch,
			Reason:        AlertHandlerFailed,
			Detail:        "payout ledger write failed",
		})
		require.NoError(t, err)
		require.Len(t, conn.published[AlertTopic], 1)
	})

	t.Run("publish error", func(t *testing.T) {
		conn := &natsConnStub{err: errors.New("connection lost")}
		publisher := NewPublisher(conn, logger)

		err := publisher.PublishStatus(&StatusEvent{TransactionID: "tx-3"})
		require.ErrorIs(t, err, ErrFailedToPublish)
	})

	t.Run("shutdown drains", func(t *testing.T) {
		conn := &natsConnStub{}
		publisher := NewPublisher(conn, logger)

		publisher.Shutdown()
		require.True(t, conn.drained)
		require.True(t, conn.closed)
	})
}
