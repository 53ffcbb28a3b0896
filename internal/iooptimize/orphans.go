package iooptimize

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// removeDanglingTypes deletes type assignments of pokemon that no
// longer exist. Databases created before the foreign keys were added
// may have them.
func removeDanglingTypes(ctx context.Context, tx pgx.Tx) (int64, error) {
	slog.Info("Removing dangling type assignments")

	q := `
DELETE FROM pokemon_types pt
WHERE NOT EXISTS (
	SELECT 1 FROM pokemon p WHERE p.id = pt.id
)`

	cmdTag, err := tx.Exec(ctx, q)
	if err != nil {
		return 0, OrphanRemovalError("pokemon_types", err)
	}

	count := cmdTag.RowsAffected()
	slog.Info("Removed dangling type assignments", "count", count)
	return count, nil
}

// removeOrphanSpecies deletes species that no pokemon refers to. Species
// that evolved from them lose the back-reference first.
func removeOrphanSpecies(ctx context.Context, tx pgx.Tx) (int64, error) {
	slog.Info("Removing orphan species")

	orphans := `
SELECT s.id
FROM pokemon_species s
LEFT OUTER JOIN pokemon p ON p.species_id = s.id
WHERE p.id IS NULL`

	_, err := tx.Exec(ctx, `
UPDATE pokemon_species
SET evolves_from_species_id = NULL
WHERE evolves_from_species_id IN (`+orphans+`)`)
	if err != nil {
		return 0, OrphanRemovalError("pokemon_species", err)
	}

	cmdTag, err := tx.Exec(ctx,
		"DELETE FROM pokemon_species WHERE id IN ("+orphans+")")
	if err != nil {
		return 0, OrphanRemovalError("pokemon_species", err)
	}

	count := cmdTag.RowsAffected()
	slog.Info("Removed orphan species", "count", count)
	return count, nil
}
