package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// withTransaction runs fn inside a transaction at the given isolation level,
// committing on success and rolling back on any error. Order creation uses
// serializable isolation so the price reads, the header insert, and every
// item insert form one atomic unit.
func withTransaction(ctx context.Context, db *sql.DB, isolation sql.IsolationLevel, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: isolation})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
