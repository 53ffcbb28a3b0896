package iostore

import (
	"context"

	"github.com/gnames/pokedb/pkg/schema"
)

// insertSpecies adds a species row and returns its generated id.
func insertSpecies(
	ctx context.Context,
	q Querier,
	op string,
	s schema.Species,
) (int, error) {
	query := `
INSERT INTO pokemon_species (
	identifier, generation_id, evolves_from_species_id, evolution_chain_id,
	color_id, shape_id, habitat_id, gender_rate, capture_rate,
	base_happiness, is_baby, hatch_counter, has_gender_differences,
	growth_rate_id, forms_switchable, "order", conquest_order
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
)
RETURNING id`

	var id int
	err := q.QueryRow(ctx, query,
		s.Identifier, s.GenerationID, s.EvolvesFromSpeciesID,
		s.EvolutionChainID, s.ColorID, s.ShapeID, s.HabitatID,
		s.GenderRate, s.CaptureRate, s.BaseHappiness, s.IsBaby,
		s.HatchCounter, s.HasGenderDifferences, s.GrowthRateID,
		s.FormsSwitchable, s.Order, s.ConquestOrder,
	).Scan(&id)
	if err != nil {
		return 0, SpeciesError(op, "insert species", err)
	}
	return id, nil
}

// updateSpecies overwrites every column of a species row.
func updateSpecies(
	ctx context.Context,
	q Querier,
	op string,
	id int,
	s schema.Species,
) error {
	query := `
UPDATE pokemon_species SET
	identifier = $2,
	generation_id = $3,
	evolves_from_species_id = $4,
	evolution_chain_id = $5,
	color_id = $6,
	shape_id = $7,
	habitat_id = $8,
	gender_rate = $9,
	capture_rate = $10,
	base_happiness = $11,
	is_baby = $12,
	hatch_counter = $13,
	has_gender_differences = $14,
	growth_rate_id = $15,
	forms_switchable = $16,
	"order" = $17,
	conquest_order = $18
WHERE id = $1`

	tag, err := q.Exec(ctx, query, id,
		s.Identifier, s.GenerationID, s.EvolvesFromSpeciesID,
		s.EvolutionChainID, s.ColorID, s.ShapeID, s.HabitatID,
		s.GenderRate, s.CaptureRate, s.BaseHappiness, s.IsBaby,
		s.HatchCounter, s.HasGenderDifferences, s.GrowthRateID,
		s.FormsSwitchable, s.Order, s.ConquestOrder,
	)
	if err != nil {
		return SpeciesError(op, "update species", err)
	}
	if tag.RowsAffected() == 0 {
		return NotFoundError(op, id)
	}
	return nil
}

// detachEvolutions clears evolves_from_species_id of every species that
// evolves from the given one.
func detachEvolutions(
	ctx context.Context,
	q Querier,
	op string,
	speciesID int,
) (int64, error) {
	query := `
UPDATE pokemon_species
	SET evolves_from_species_id = NULL
	WHERE evolves_from_species_id = $1`

	tag, err := q.Exec(ctx, query, speciesID)
	if err != nil {
		return 0, SpeciesError(op, "detach evolutions", err)
	}
	return tag.RowsAffected(), nil
}

// deleteSpecies removes a species row.
func deleteSpecies(
	ctx context.Context,
	q Querier,
	op string,
	id int,
) error {
	tag, err := q.Exec(ctx, "DELETE FROM pokemon_species WHERE id = $1", id)
	if err != nil {
		return SpeciesError(op, "delete species", err)
	}
	if tag.RowsAffected() == 0 {
		return NotFoundError(op, id)
	}
	return nil
}
