package iostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// sequenceLockKey identifies the advisory lock that serializes
// sequence reconciliation with the inserts that follow it ("pokedb").
const sequenceLockKey int64 = 0x706f6b656462

// sequenceTables are the tables with serial ids that may be seeded
// with explicit ids.
var sequenceTables = []string{"pokemon_species", "pokemon"}

// ReconcileSequences makes sure that the id sequences of pokemon_species
// and pokemon will not produce ids that already exist. It takes a
// transaction-level advisory lock, so concurrent callers wait for each
// other until the transaction ends.
func ReconcileSequences(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", sequenceLockKey)
	if err != nil {
		return TransactionError("reconcile", "advisory lock", err)
	}

	for _, table := range sequenceTables {
		if err = reconcileSequence(ctx, tx, table); err != nil {
			return SequenceError(table, err)
		}
	}
	return nil
}

func reconcileSequence(ctx context.Context, q Querier, table string) error {
	var seq *string
	err := q.QueryRow(ctx,
		"SELECT pg_get_serial_sequence($1, 'id')", table,
	).Scan(&seq)
	if err != nil {
		return err
	}
	if seq == nil {
		return errors.New("id column is not backed by a sequence")
	}

	var maxID int64
	q1 := fmt.Sprintf("SELECT COALESCE(MAX(id), 0) FROM %s",
		pgx.Identifier{table}.Sanitize())
	if err = q.QueryRow(ctx, q1).Scan(&maxID); err != nil {
		return err
	}

	// seq comes from pg_get_serial_sequence and is already quoted
	var last int64
	var isCalled bool
	q2 := fmt.Sprintf("SELECT last_value, is_called FROM %s", *seq)
	if err = q.QueryRow(ctx, q2).Scan(&last, &isCalled); err != nil {
		return err
	}

	next, move := nextValue(maxID, last, isCalled)
	if !move {
		return nil
	}

	_, err = q.Exec(ctx,
		"SELECT setval($1::text::regclass, $2, false)", *seq, next,
	)
	if err != nil {
		return err
	}
	slog.Debug("sequence reconciled",
		"table", table, "sequence", *seq, "next", next)
	return nil
}

// nextValue computes the value a sequence has to return next so that
// it does not collide with maxID. The second result is false when the
// sequence is already far enough, sequences never move backwards.
func nextValue(maxID, lastValue int64, isCalled bool) (int64, bool) {
	current := lastValue
	if isCalled {
		current = lastValue + 1
	}
	want := maxID + 1
	if want <= current {
		return current, false
	}
	return want, true
}
