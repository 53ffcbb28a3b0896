package iostore

import (
	"context"
	"errors"

	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/jackc/pgx/v5"
)

// selectPokemon projects instance columns from pokemon and shared
// columns from pokemon_species. Column names match the db tags of
// pokedex.Pokemon.
const selectPokemon = `
SELECT
	p.id, p.species_id, ps.identifier, ps.generation_id,
	ps.evolves_from_species_id, ps.evolution_chain_id, ps.color_id,
	ps.shape_id, ps.habitat_id, ps.gender_rate, ps.capture_rate,
	ps.base_happiness, ps.is_baby, ps.hatch_counter,
	ps.has_gender_differences, ps.growth_rate_id, ps.forms_switchable,
	ps.conquest_order, ps."order",
	p.height, p.weight, p.base_experience, p.is_default
FROM pokemon p
	JOIN pokemon_species ps ON p.species_id = ps.id`

// listPokemon returns records ordered by pokemon id.
func listPokemon(
	ctx context.Context,
	q Querier,
	page pokedex.Page,
) ([]pokedex.Pokemon, error) {
	query := selectPokemon + `
ORDER BY p.id
LIMIT $1 OFFSET $2`

	rows, err := q.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, ReadError("list", err)
	}
	res, err := pgx.CollectRows(rows, pgx.RowToStructByName[pokedex.Pokemon])
	if err != nil {
		return nil, ReadError("list", err)
	}
	return res, nil
}

// getPokemon returns the record of the given pokemon id.
func getPokemon(
	ctx context.Context,
	q Querier,
	op string,
	id int,
) (pokedex.Pokemon, error) {
	query := selectPokemon + `
WHERE p.id = $1`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return pokedex.Pokemon{}, ReadError(op, err)
	}
	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[pokedex.Pokemon])
	if errors.Is(err, pgx.ErrNoRows) {
		return pokedex.Pokemon{}, NotFoundError(op, id)
	}
	if err != nil {
		return pokedex.Pokemon{}, ReadError(op, err)
	}
	return res, nil
}
