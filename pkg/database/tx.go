package database

import (
	"database/sql"
	"fmt"
)

// TxRunner wraps a *sql.DB to run functions inside a transaction.
type TxRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunTx begins a transaction, runs fn, and commits when fn returns
// nil. Any error from fn, or from the commit itself, rolls the
// transaction back.
func (r *TxRunner) RunTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
