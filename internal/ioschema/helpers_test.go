package ioschema

import (
	"testing"

	"github.com/gnames/pokedb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestConstraintSQL(t *testing.T) {
	c := schema.Constraint{
		Name:       "fk_pokemon_species",
		Table:      "pokemon",
		Definition: "FOREIGN KEY (species_id) REFERENCES pokemon_species (id)",
	}

	res := constraintSQL(c)
	assert.Equal(t, []string{
		`ALTER TABLE "pokemon" DROP CONSTRAINT IF EXISTS "fk_pokemon_species"`,
		`ALTER TABLE "pokemon" ADD CONSTRAINT "fk_pokemon_species" ` +
			`FOREIGN KEY (species_id) REFERENCES pokemon_species (id)`,
	}, res)
}
