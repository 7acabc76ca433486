package postgresql

import (
	"database/sql"
	"encoding/json"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

const transactionColumns = `
	 id
	,kind
	,status
	,ledger_handle
	,confirmation
	,last_error
	,attempt
	,attempt_limit
	,payload
	,locked_by
	,created_at
	,updated_at
	,confirmed_at
	`

type scannable interface {
	Scan(dest ...any) error
}

func scanTransaction(row scannable) (*store.Transaction, error) {
	tx := &store.Transaction{}

	var (
		ledgerHandle sql.NullString
		confirmation []byte
		lastError    sql.NullString
		payload      []byte
		confirmedAt  sql.NullTime
	)

	err := row.Scan(
		&tx.ID,
		&tx.Kind,
		&tx.Status,
		&ledgerHandle,
		&confirmation,
		&lastError,
		&tx.Attempt,
		&tx.AttemptLimit,
		&payload,
		&tx.LockedBy,
		&tx.CreatedAt,
		&tx.UpdatedAt,
		&confirmedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.LedgerHandle = ledgerHandle.String
	tx.LastError = lastError.String
	tx.CreatedAt = tx.CreatedAt.UTC()
	tx.UpdatedAt = tx.UpdatedAt.UTC()
	if confirmedAt.Valid {
		tx.ConfirmedAt = confirmedAt.Time.UTC()
	}

	if len(confirmation) > 0 {
		c := &store.Confirmation{}
		err = json.Unmarshal(confirmation, c)
		if err != nil {
			return nil, err
		}
		tx.Confirmation = c
	}

	tx.Payload, err = store.DecodePayload(tx.Kind, payload)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func scanTransactions(rows *sql.Rows) ([]*store.Transaction, error) {
	var txs []*store.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func encodeConfirmation(c *store.Confirmation) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}
