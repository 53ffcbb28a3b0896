// Package pokedex defines the pokemon record as clients see it, and the
// contracts of the components that store, seed and maintain it.
//
// A Pokemon is persisted as two rows: a species row holding the shared
// taxon-level attributes and a pokemon row holding the per-instance
// attributes. Outside of the storage layer the two halves are never
// exposed separately.
package pokedex

// Pokemon is the flattened join of a pokemon row and its species row.
type Pokemon struct {
	// ID is the pokemon row id. It is generated on create and ignored
	// in request bodies.
	ID int `json:"id" db:"id"`

	// SpeciesID is the id of the species row. It is read-only and lets
	// clients fill EvolvesFromSpeciesID of other records.
	SpeciesID int `json:"species_id" db:"species_id"`

	// Identifier is written to both rows.
	Identifier string `json:"identifier" db:"identifier" validate:"required"`

	GenerationID         int  `json:"generation_id" db:"generation_id"`
	EvolvesFromSpeciesID *int `json:"evolves_from_species_id" db:"evolves_from_species_id"`
	EvolutionChainID     int  `json:"evolution_chain_id" db:"evolution_chain_id"`
	ColorID              *int `json:"color_id" db:"color_id"`
	ShapeID              *int `json:"shape_id" db:"shape_id"`
	HabitatID            *int `json:"habitat_id" db:"habitat_id"`
	GenderRate           int  `json:"gender_rate" db:"gender_rate"`
	CaptureRate          int  `json:"capture_rate" db:"capture_rate"`
	BaseHappiness        int  `json:"base_happiness" db:"base_happiness"`
	IsBaby               bool `json:"is_baby" db:"is_baby"`
	HatchCounter         int  `json:"hatch_counter" db:"hatch_counter"`
	HasGenderDifferences bool `json:"has_gender_differences" db:"has_gender_differences"`
	GrowthRateID         *int `json:"growth_rate_id" db:"growth_rate_id"`
	FormsSwitchable      bool `json:"forms_switchable" db:"forms_switchable"`
	ConquestOrder        *int `json:"conquest_order" db:"conquest_order"`

	// Order is written to both rows and read from the species row.
	Order int `json:"order" db:"order"`

	Height         int  `json:"height" db:"height"`
	Weight         int  `json:"weight" db:"weight"`
	BaseExperience int  `json:"base_experience" db:"base_experience"`
	IsDefault      bool `json:"is_default" db:"is_default"`
}
