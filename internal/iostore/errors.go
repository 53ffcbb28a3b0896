package iostore

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// IsNotFound reports whether err means that no record matched the
// requested id.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.StoreNotFoundError
	}
	return false
}

// NotConnectedError is returned when the store is used before the
// operator is connected.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Store operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NotFoundError is returned when an operation targets a missing id.
func NotFoundError(op string, id int) error {
	return &gn.Error{
		Code: errcode.StoreNotFoundError,
		Msg:  "Pokemon <em>%d</em> not found (%s)",
		Vars: []any{id, op},
		Err:  fmt.Errorf("%s: pokemon %d does not exist", op, id),
	}
}

// ConnectionError is returned when a transaction cannot be opened.
func ConnectionError(op string, err error) error {
	msg := `Cannot start a transaction for <em>%s</em>

<em>Possible causes:</em>
  - PostgreSQL went down or restarted
  - Connection pool is exhausted
  - Request was cancelled`

	return &gn.Error{
		Code: errcode.StoreConnectionError,
		Msg:  msg,
		Vars: []any{op},
		Err:  fmt.Errorf("%s: cannot begin transaction: %w", op, err),
	}
}

// TransactionError is returned when a statement inside a transaction
// fails and no more specific error applies.
func TransactionError(op, step string, err error) error {
	return stepError(errcode.StoreTransactionError, op, step, err)
}

// SequenceError is returned when an id sequence cannot be reconciled.
func SequenceError(table string, err error) error {
	msg := `Cannot reconcile id sequence of <em>%s</em>

<em>How to fix:</em>
  1. Make sure the table has a serial id column
  2. Run 'pokedb optimize' to repair sequences`

	return &gn.Error{
		Code: errcode.StoreSequenceError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("reconcile %s sequence: %w", table, err),
	}
}

// SpeciesError is returned when a write to pokemon_species fails.
func SpeciesError(op, step string, err error) error {
	return stepError(errcode.StoreSpeciesError, op, step, err)
}

// CreatureError is returned when a write to pokemon fails.
func CreatureError(op, step string, err error) error {
	return stepError(errcode.StoreCreatureError, op, step, err)
}

// ReadError is returned when the joined record cannot be read.
func ReadError(op string, err error) error {
	return stepError(errcode.StoreReadError, op, "read", err)
}

// CommitError is returned when a transaction fails to commit.
func CommitError(op string, err error) error {
	return stepError(errcode.StoreCommitError, op, "commit", err)
}

func stepError(code gn.ErrorCode, op, step string, err error) error {
	return &gn.Error{
		Code: code,
		Msg:  "Operation <em>%s</em> failed at step <em>%s</em>",
		Vars: []any{op, step},
		Err:  fmt.Errorf("%s: %s: %w", op, step, err),
	}
}
