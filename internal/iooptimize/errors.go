package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// NotConnectedError is returned when optimize runs without a database
// connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Optimize operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// OrphanRemovalError is returned when orphan rows cannot be removed.
func OrphanRemovalError(table string, err error) error {
	msg := `Cannot remove orphan records from <em>%s</em>

<em>Possible causes:</em>
  - Database connection lost during processing
  - Table does not exist, run 'pokedb create'

<em>How to fix:</em>
  1. Check database connection: <em>pg_isready</em>
  2. Retry the optimize operation`

	return &gn.Error{
		Code: errcode.OptimizerOrphanRemovalError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("remove orphans from %s: %w", table, err),
	}
}

// SequenceError is returned when id sequences cannot be reconciled.
func SequenceError(err error) error {
	msg := `Cannot reconcile id sequences

<em>How to fix:</em>
  1. Make sure the schema was created by 'pokedb create'
  2. Retry the optimize operation`

	return &gn.Error{
		Code: errcode.OptimizerSequenceError,
		Msg:  msg,
		Err:  fmt.Errorf("reconcile sequences: %w", err),
	}
}

// VacuumError is returned when VACUUM ANALYZE fails.
func VacuumError(table string, err error) error {
	msg := `VACUUM ANALYZE failed for <em>%s</em>

<em>Possible causes:</em>
  - Long-running transactions block VACUUM
  - Not enough disk space for temporary files`

	return &gn.Error{
		Code: errcode.OptimizerVacuumError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("vacuum analyze %s: %w", table, err),
	}
}

// TransactionError is returned when the cleanup transaction cannot
// begin or commit.
func TransactionError(step string, err error) error {
	return &gn.Error{
		Code: errcode.OptimizerOrphanRemovalError,
		Msg:  "Cleanup transaction failed at step <em>%s</em>",
		Vars: []any{step},
		Err:  fmt.Errorf("cleanup %s: %w", step, err),
	}
}
