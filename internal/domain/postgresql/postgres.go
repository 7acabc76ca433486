// Package postgresql implements the domain collaborators against the same
// database that carries the transaction records. Every financial write is
// guarded by an applied_transactions row keyed on the transaction id, so a
// replayed confirmation becomes a no-op instead of a double effect.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const postgresDriverName = "postgres"

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

// markApplied claims the transaction id for the given effect. It returns
// false without error when the id was claimed before, which is how replays
// are detected.
func markApplied(ctx context.Context, dbTx *sql.Tx, transactionID string, effect string, appliedAt time.Time) (bool, error) {
	q := `INSERT INTO txflow.applied_transactions (transaction_id, effect, applied_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (transaction_id) DO NOTHING;`

	res, err := dbTx.ExecContext(ctx, q, transactionID, effect, appliedAt)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

func (p *PostgreSQL) Close(_ context.Context) error {
	return p.db.Close()
}
