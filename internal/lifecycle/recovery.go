package lifecycle

import (
	"context"
	"log/slog"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

// Recover re-attaches this process to every transaction left unresolved by a
// prior one. Submitted records are only re-watched, never re-sent; pending
// records never reached the ledger and re-enter the normal submission path.
// Confirmed and failed records are not touched. Must run once, before the
// manager accepts new work.
func (m *Manager) Recover(ctx context.Context) error {
	// adopt every page before processing any record: processing moves records
	// out of the pending|submitted set the offset paginates over, so
	// interleaving the two would shift later pages and skip records
	var unresolved []*store.Transaction
	var offset int64

	for {
		batch, err := m.store.AdoptUnresolved(ctx, m.hostname, adoptBatchSize, offset)
		if err != nil {
			return err
		}

		if len(batch) == 0 {
			break
		}

		unresolved = append(unresolved, batch...)
		offset += adoptBatchSize
	}

	rewatched := 0
	resubmitted := 0

	for _, tx := range unresolved {
		switch {
		case tx.Status == store.StatusSubmitted && tx.LedgerHandle != "":
			m.startMonitor(tx)
			rewatched++
		case tx.Status == store.StatusPending && tx.LedgerHandle == "":
			m.submit(ctx, tx)
			resubmitted++
		default:
			m.logger.Warn("unresolved transaction in unexpected shape",
				slog.String("id", tx.ID),
				slog.String("status", string(tx.Status)),
				slog.String("ledgerHandle", tx.LedgerHandle),
			)
		}
	}

	m.recovered.Store(true)

	m.logger.Info("recovery complete",
		slog.Int("rewatched", rewatched),
		slog.Int("resubmitted", resubmitted),
	)

	return nil
}
