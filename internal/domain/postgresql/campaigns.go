package postgresql

import (
	"context"
)

// Activate moves the campaign to active and records its funding reference.
// The applied_transactions guard makes a replayed confirmation return false.
func (p *PostgreSQL) Activate(ctx context.Context, campaignID, transactionID, ledgerRef string) (bool, error) {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = dbTx.Rollback()
	}()

	applied, err := markApplied(ctx, dbTx, transactionID, "campaign_activate", p.now().UTC())
	if err != nil {
		return false, err
	}
	if !applied {
		return false, nil
	}

	q := `UPDATE txflow.campaigns
		SET status = 'active', funding_ref = $2, updated_at = $3
		WHERE id = $1;`

	_, err = dbTx.ExecContext(ctx, q, campaignID, ledgerRef, p.now().UTC())
	if err != nil {
		return false, err
	}

	return true, dbTx.Commit()
}

// AddSpend increments the campaign spend counter once per transaction id.
func (p *PostgreSQL) AddSpend(ctx context.Context, campaignID, transactionID string, amount int64) (bool, error) {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = dbTx.Rollback()
	}()

	applied, err := markApplied(ctx, dbTx, transactionID, "campaign_spend", p.now().UTC())
	if err != nil {
		return false, err
	}
	if !applied {
		return false, nil
	}

	q := `UPDATE txflow.campaigns
		SET spent = spent + $2, updated_at = $3
		WHERE id = $1;`

	_, err = dbTx.ExecContext(ctx, q, campaignID, amount, p.now().UTC())
	if err != nil {
		return false, err
	}

	return true, dbTx.Commit()
}
