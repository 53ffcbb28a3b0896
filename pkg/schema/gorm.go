package schema

import (
	"gorm.io/gorm"
)

// Constraint is a foreign key added after AutoMigrate.
type Constraint struct {
	Name  string
	Table string
	// Definition follows ADD CONSTRAINT name.
	Definition string
}

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Species{},
		&Pokemon{},
		&PokemonType{},
	}
}

// Constraints returns foreign keys between the tables. They are
// declared in SQL because GORM needs association fields to emit them.
func Constraints() []Constraint {
	return []Constraint{
		{
			Name:  "fk_pokemon_species",
			Table: "pokemon",
			Definition: "FOREIGN KEY (species_id) " +
				"REFERENCES pokemon_species (id)",
		},
		{
			Name:  "fk_pokemon_species_evolves_from",
			Table: "pokemon_species",
			Definition: "FOREIGN KEY (evolves_from_species_id) " +
				"REFERENCES pokemon_species (id) ON DELETE SET NULL " +
				"DEFERRABLE INITIALLY DEFERRED",
		},
		{
			Name:  "fk_pokemon_types_pokemon",
			Table: "pokemon_types",
			Definition: "FOREIGN KEY (id) " +
				"REFERENCES pokemon (id) ON DELETE CASCADE",
		},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
