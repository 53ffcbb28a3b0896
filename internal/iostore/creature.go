package iostore

import (
	"context"
	"errors"

	"github.com/gnames/pokedb/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// insertCreature adds a pokemon row and returns its generated id.
func insertCreature(
	ctx context.Context,
	q Querier,
	op string,
	c schema.Pokemon,
) (int, error) {
	query := `
INSERT INTO pokemon (
	identifier, species_id, height, weight, base_experience, "order",
	is_default
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	var id int
	err := q.QueryRow(ctx, query,
		c.Identifier, c.SpeciesID, c.Height, c.Weight, c.BaseExperience,
		c.Order, c.IsDefault,
	).Scan(&id)
	if err != nil {
		return 0, CreatureError(op, "insert pokemon", err)
	}
	return id, nil
}

// updateCreature overwrites the instance columns of a pokemon row and
// returns the id of its species. The species reference itself is not
// changed.
func updateCreature(
	ctx context.Context,
	q Querier,
	op string,
	id int,
	c schema.Pokemon,
) (int, error) {
	query := `
UPDATE pokemon SET
	identifier = $2,
	height = $3,
	weight = $4,
	base_experience = $5,
	"order" = $6,
	is_default = $7
WHERE id = $1
RETURNING species_id`

	var speciesID int
	err := q.QueryRow(ctx, query, id,
		c.Identifier, c.Height, c.Weight, c.BaseExperience, c.Order,
		c.IsDefault,
	).Scan(&speciesID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, NotFoundError(op, id)
	}
	if err != nil {
		return 0, CreatureError(op, "update pokemon", err)
	}
	return speciesID, nil
}

// deleteCreature removes a pokemon row and returns the id of its
// species.
func deleteCreature(
	ctx context.Context,
	q Querier,
	op string,
	id int,
) (int, error) {
	var speciesID int
	err := q.QueryRow(ctx,
		"DELETE FROM pokemon WHERE id = $1 RETURNING species_id", id,
	).Scan(&speciesID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, NotFoundError(op, id)
	}
	if err != nil {
		return 0, CreatureError(op, "delete pokemon", err)
	}
	return speciesID, nil
}

// deleteTypes removes type assignments of a pokemon.
func deleteTypes(
	ctx context.Context,
	q Querier,
	op string,
	id int,
) error {
	_, err := q.Exec(ctx, "DELETE FROM pokemon_types WHERE id = $1", id)
	if err != nil {
		return TransactionError(op, "delete types", err)
	}
	return nil
}

// speciesInUse checks if any pokemon still references the species.
func speciesInUse(
	ctx context.Context,
	q Querier,
	op string,
	speciesID int,
) (bool, error) {
	var res bool
	err := q.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pokemon WHERE species_id = $1)",
		speciesID,
	).Scan(&res)
	if err != nil {
		return false, CreatureError(op, "check species use", err)
	}
	return res, nil
}
