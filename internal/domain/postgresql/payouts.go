package postgresql

import (
	"context"
	"time"
)

// MarkItemsPaid flags the batch's unpaid line items as paid. The paid filter
// makes the call idempotent on its own, rows already marked are skipped.
func (p *PostgreSQL) MarkItemsPaid(ctx context.Context, transactionID string, paidAt time.Time) (int64, error) {
	q := `UPDATE txflow.payout_items
		SET paid = TRUE, paid_at = $2
		WHERE transaction_id = $1 AND paid = FALSE;`

	res, err := p.db.ExecContext(ctx, q, transactionID, paidAt.UTC())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
