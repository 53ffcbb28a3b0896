package iostore

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is implemented by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// withTx runs fn inside a transaction. The transaction is committed
// when fn returns nil and rolled back otherwise. Errors from fn are
// returned unchanged.
func withTx(
	ctx context.Context,
	pool *pgxpool.Pool,
	op string,
	fn func(pgx.Tx) error,
) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return ConnectionError(op, err)
	}
	// no-op after a successful commit
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err = fn(tx); err != nil {
		slog.Debug("transaction rolled back", "op", op, "error", err)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return CommitError(op, err)
	}
	return nil
}
