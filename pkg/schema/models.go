// Package schema provides database schema models for PokeDB.
// Column layout follows the public Pokemon data dumps, so seeded
// rows keep their original ids.
package schema

// Species is the shared, taxon-level half of a pokemon record.
type Species struct {
	// ID is generated by the pokemon_species_id_seq sequence, or comes
	// pre-numbered from seed data.
	ID int `gorm:"primaryKey"`

	// Identifier is the unique display name, e.g. "bulbasaur".
	Identifier string `gorm:"type:text;not null;uniqueIndex"`

	// GenerationID is the game generation that introduced the species.
	GenerationID int `gorm:"not null"`

	// EvolvesFromSpeciesID points to the predecessor in the evolution
	// chain. Nil for the root of a chain.
	EvolvesFromSpeciesID *int `gorm:"index"`

	// EvolutionChainID groups species into lineages.
	EvolutionChainID int `gorm:"not null"`

	ColorID   *int
	ShapeID   *int
	HabitatID *int

	// GenderRate is the chance of being female in eighths, -1 for
	// genderless.
	GenderRate int `gorm:"not null"`

	CaptureRate          int  `gorm:"not null"`
	BaseHappiness        int  `gorm:"not null"`
	IsBaby               bool `gorm:"not null"`
	HatchCounter         int  `gorm:"not null"`
	HasGenderDifferences bool `gorm:"not null"`
	GrowthRateID         *int
	FormsSwitchable      bool `gorm:"not null"`

	// Order sorts species so that evolution families stay together.
	Order int `gorm:"column:order;not null"`

	ConquestOrder *int
}

// TableName returns the PostgreSQL table name.
func (Species) TableName() string {
	return "pokemon_species"
}

// Pokemon is the per-instance half of a pokemon record. Several
// instances (forms) may share one species.
type Pokemon struct {
	ID         int    `gorm:"primaryKey"`
	Identifier string `gorm:"type:text;not null"`

	// SpeciesID references pokemon_species.id.
	SpeciesID int `gorm:"not null;index"`

	// Height in decimetres.
	Height int `gorm:"not null"`

	// Weight in hectograms.
	Weight int `gorm:"not null"`

	BaseExperience int  `gorm:"not null"`
	Order          int  `gorm:"column:order;not null"`
	IsDefault      bool `gorm:"not null"`
}

// TableName returns the PostgreSQL table name.
func (Pokemon) TableName() string {
	return "pokemon"
}

// PokemonType assigns an elemental type to a pokemon in a slot.
// The pokemon id column is named "id" for compatibility with
// existing databases.
type PokemonType struct {
	ID     int `gorm:"primaryKey;autoIncrement:false"`
	TypeID int `gorm:"not null;index"`
	Slot   int `gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the PostgreSQL table name.
func (PokemonType) TableName() string {
	return "pokemon_types"
}
