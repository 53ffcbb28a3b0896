package iooptimize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var vacuumTables = []string{"pokemon_species", "pokemon", "pokemon_types"}

// vacuumAnalyze reclaims space of deleted rows and refreshes planner
// statistics. VACUUM cannot run inside a transaction block.
func vacuumAnalyze(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Running VACUUM ANALYZE")
	timeStart := time.Now()

	for _, table := range vacuumTables {
		q := fmt.Sprintf("VACUUM ANALYZE %s", pgx.Identifier{table}.Sanitize())
		if _, err := pool.Exec(ctx, q); err != nil {
			return VacuumError(table, err)
		}
	}

	slog.Info("VACUUM ANALYZE completed",
		"duration", time.Since(timeStart).String())
	return nil
}
