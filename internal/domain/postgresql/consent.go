package postgresql

import (
	"context"

	"github.com/admesh/txflow/internal/domain"
)

// InsertGrant records a consent grant. A grant already recorded for the same
// transaction id returns false.
func (p *PostgreSQL) InsertGrant(ctx context.Context, grant *domain.ConsentGrant) (bool, error) {
	q := `INSERT INTO txflow.consent_grants (user_id, campaign_id, scope, transaction_id, ledger_ref, granted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (transaction_id) DO NOTHING;`

	res, err := p.db.ExecContext(ctx, q,
		grant.UserID,
		grant.CampaignID,
		grant.Scope,
		grant.TransactionID,
		grant.LedgerRef,
		grant.GrantedAt.UTC(),
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}
