// Package iooptimize implements pokedex.Optimizer. It repairs what bulk
// loads and older databases may leave behind: type assignments of
// missing pokemon, species without pokemon and id sequences that lag
// behind their tables.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pokedb/internal/iostore"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/pokedex"
)

type optimizer struct {
	operator db.Operator
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(op db.Operator) pokedex.Optimizer {
	return &optimizer{operator: op}
}

// Optimize runs three steps:
//  1. Remove orphans (dangling type assignments, then orphan species)
//  2. Reconcile id sequences with their tables
//  3. Run VACUUM ANALYZE
//
// The first two steps share one transaction.
func (o *optimizer) Optimize(
	ctx context.Context,
) (pokedex.OptimizeReport, error) {
	var res pokedex.OptimizeReport
	start := time.Now()

	pool := o.operator.Pool()
	if pool == nil {
		return res, NotConnectedError()
	}

	slog.Info("Starting database optimization")

	tx, err := pool.Begin(ctx)
	if err != nil {
		return res, TransactionError("begin", err)
	}
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	slog.Info("Step 1/3: Removing orphans")
	if res.DanglingTypes, err = removeDanglingTypes(ctx, tx); err != nil {
		return res, err
	}
	if res.OrphanSpecies, err = removeOrphanSpecies(ctx, tx); err != nil {
		return res, err
	}

	slog.Info("Step 2/3: Reconciling id sequences")
	if err = iostore.ReconcileSequences(ctx, tx); err != nil {
		return res, SequenceError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return res, TransactionError("commit", err)
	}

	slog.Info("Step 3/3: Updating statistics")
	if err = vacuumAnalyze(ctx, pool); err != nil {
		return res, err
	}

	res.Duration = time.Since(start).Seconds()
	reportOrphans(res)
	slog.Info("Database optimization completed",
		"dangling_types", res.DanglingTypes,
		"orphan_species", res.OrphanSpecies,
		"duration", gnfmt.TimeString(res.Duration),
	)
	return res, nil
}

func reportOrphans(rep pokedex.OptimizeReport) {
	if rep.DanglingTypes+rep.OrphanSpecies == 0 {
		gn.Info("<em>No orphaned records found</em>")
		return
	}
	gn.Info(
		"<em>Removed %s dangling type assignments and %s orphan species</em>",
		humanize.Comma(rep.DanglingTypes),
		humanize.Comma(rep.OrphanSpecies),
	)
}
