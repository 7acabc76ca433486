package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

const postgresDriverName = "postgres"

var ErrInvalidRetention = errors.New("retention days must be positive")

type PostgreSQL struct {
	db  *sql.DB
	now func() time.Time
}

func WithNow(nowFunc func() time.Time) func(*PostgreSQL) {
	return func(p *PostgreSQL) {
		p.now = nowFunc
	}
}

func New(dbInfo string, idleConns int, maxOpenConns int, opts ...func(*PostgreSQL)) (*PostgreSQL, error) {
	db, err := sql.Open(postgresDriverName, dbInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres DB: %+v", err)
	}

	db.SetMaxIdleConns(idleConns)
	db.SetMaxOpenConns(maxOpenConns)

	p := &PostgreSQL{
		db:  db,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func (p *PostgreSQL) Insert(ctx context.Context, tx *store.Transaction) error {
	payload, err := store.EncodePayload(tx.Payload)
	if err != nil {
		return err
	}

	q := `INSERT INTO txflow.transactions (
		 id
		,kind
		,status
		,ledger_handle
		,last_error
		,attempt
		,attempt_limit
		,payload
		,locked_by
		,created_at
		,updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10);`

	_, err = p.db.ExecContext(ctx, q,
		tx.ID,
		tx.Kind,
		tx.Status,
		tx.LedgerHandle,
		tx.LastError,
		tx.Attempt,
		tx.AttemptLimit,
		payload,
		tx.LockedBy,
		tx.CreatedAt.UTC(),
	)

	return err
}

func (p *PostgreSQL) InsertPayoutItems(ctx context.Context, items []*store.PayoutItem) error {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = dbTx.Rollback()
	}()

	q := `INSERT INTO txflow.payout_items (
		 id
		,transaction_id
		,recipient
		,role
		,amount
		,event_ids
		,paid
		) VALUES ($1, $2, $3, $4, $5, $6, FALSE);`

	for _, item := range items {
		_, err = dbTx.ExecContext(ctx, q,
			item.ID,
			item.TransactionID,
			item.Recipient,
			item.Role,
			item.Amount,
			pq.Array(item.EventIDs),
		)
		if err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

func (p *PostgreSQL) Get(ctx context.Context, id string) (*store.Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM txflow.transactions WHERE id = $1 LIMIT 1;`

	tx, err := scanTransaction(p.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return tx, nil
}

func (p *PostgreSQL) GetPayoutItems(ctx context.Context, transactionID string) ([]*store.PayoutItem, error) {
	q := `SELECT
		 id
		,transaction_id
		,recipient
		,role
		,amount
		,event_ids
		,paid
		,paid_at
		FROM txflow.payout_items WHERE transaction_id = $1 ORDER BY id;`

	rows, err := p.db.QueryContext(ctx, q, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*store.PayoutItem
	for rows.Next() {
		item := &store.PayoutItem{}
		var paidAt sql.NullTime

		err = rows.Scan(
			&item.ID,
			&item.TransactionID,
			&item.Recipient,
			&item.Role,
			&item.Amount,
			pq.Array(&item.EventIDs),
			&item.Paid,
			&paidAt,
		)
		if err != nil {
			return nil, err
		}

		if paidAt.Valid {
			item.PaidAt = paidAt.Time.UTC()
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (p *PostgreSQL) SetSubmitted(ctx context.Context, id string, ledgerHandle string) (*store.Transaction, error) {
	q := `UPDATE txflow.transactions
		SET status = $3, ledger_handle = $4, updated_at = $2
		WHERE id = $1 AND status = $5
		RETURNING ` + transactionColumns + `;`

	tx, err := scanTransaction(p.db.QueryRowContext(ctx, q, id, p.now().UTC(), store.StatusSubmitted, ledgerHandle, store.StatusPending))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStatusConflict
		}
		return nil, err
	}

	return tx, nil
}

func (p *PostgreSQL) SetConfirmed(ctx context.Context, id string, confirmation *store.Confirmation) (*store.Transaction, error) {
	detail, err := encodeConfirmation(confirmation)
	if err != nil {
		return nil, err
	}

	q := `UPDATE txflow.transactions
		SET status = $3, confirmation = $4, confirmed_at = $2, updated_at = $2
		WHERE id = $1 AND status = $5
		RETURNING ` + transactionColumns + `;`

	tx, err := scanTransaction(p.db.QueryRowContext(ctx, q, id, p.now().UTC(), store.StatusConfirmed, detail, store.StatusSubmitted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStatusConflict
		}
		return nil, err
	}

	return tx, nil
}

func (p *PostgreSQL) SetFailed(ctx context.Context, id string, reason string) (*store.Transaction, error) {
	q := `UPDATE txflow.transactions
		SET status = $3, last_error = $4, updated_at = $2
		WHERE id = $1 AND status = ANY($5)
		RETURNING ` + transactionColumns + `;`

	fromStatuses := pq.Array([]string{string(store.StatusPending), string(store.StatusSubmitted)})

	tx, err := scanTransaction(p.db.QueryRowContext(ctx, q, id, p.now().UTC(), store.StatusFailed, reason, fromStatuses))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStatusConflict
		}
		return nil, err
	}

	return tx, nil
}

func (p *PostgreSQL) SetRetrying(ctx context.Context, id string) (*store.Transaction, error) {
	q := `UPDATE txflow.transactions
		SET status = $3, attempt = attempt + 1, updated_at = $2
		WHERE id = $1 AND status = $4 AND attempt + 1 < attempt_limit
		RETURNING ` + transactionColumns + `;`

	tx, err := scanTransaction(p.db.QueryRowContext(ctx, q, id, p.now().UTC(), store.StatusPending, store.StatusFailed))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStatusConflict
		}
		return nil, err
	}

	return tx, nil
}

func (p *PostgreSQL) AdoptUnresolved(ctx context.Context, lockedBy string, limit int64, offset int64) ([]*store.Transaction, error) {
	q := `UPDATE txflow.transactions
		SET locked_by = $1
		WHERE id IN (
			SELECT id FROM txflow.transactions
			WHERE status = ANY($2) AND locked_by IN ('NONE', $1)
			ORDER BY created_at
			LIMIT $3 OFFSET $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + transactionColumns + `;`

	statuses := pq.Array([]string{string(store.StatusPending), string(store.StatusSubmitted)})

	rows, err := p.db.QueryContext(ctx, q, lockedBy, statuses, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (p *PostgreSQL) GetRetryable(ctx context.Context, base time.Duration, now time.Time, limit int64) ([]*store.Transaction, error) {
	q := `SELECT ` + transactionColumns + `
		FROM txflow.transactions
		WHERE status = $1
		AND attempt + 1 < attempt_limit
		AND updated_at + make_interval(secs => $2 * power(2, attempt)) <= $3
		ORDER BY updated_at
		LIMIT $4;`

	rows, err := p.db.QueryContext(ctx, q, store.StatusFailed, base.Seconds(), now.UTC(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (p *PostgreSQL) SetUnlockedByName(ctx context.Context, lockedBy string) (int64, error) {
	q := `UPDATE txflow.transactions SET locked_by = 'NONE' WHERE locked_by = $1;`

	rows, err := p.db.ExecContext(ctx, q, lockedBy)
	if err != nil {
		return 0, err
	}

	return rows.RowsAffected()
}

// ClearAudit removes resolved records older than the retention window. The
// audit trail is kept indefinitely unless an operator explicitly asks for a
// positive retention.
func (p *PostgreSQL) ClearAudit(ctx context.Context, retentionDays int32) (int64, error) {
	if retentionDays <= 0 {
		return 0, ErrInvalidRetention
	}

	start := p.now().UTC().Add(-24 * time.Hour * time.Duration(retentionDays))

	terminal := pq.Array([]string{string(store.StatusConfirmed), string(store.StatusFailed)})

	res, err := p.db.ExecContext(ctx, `DELETE FROM txflow.transactions WHERE created_at <= $1 AND status = ANY($2);`, start, terminal)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (p *PostgreSQL) Ping(ctx context.Context) error {
	_, err := p.db.QueryContext(ctx, "SELECT 1;")
	return err
}

func (p *PostgreSQL) Close(_ context.Context) error {
	return p.db.Close()
}
