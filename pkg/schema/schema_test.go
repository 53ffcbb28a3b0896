package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/pokedb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "pokemon_species", schema.Species{}.TableName())
	assert.Equal(t, "pokemon", schema.Pokemon{}.TableName())
	assert.Equal(t, "pokemon_types", schema.PokemonType{}.TableName())
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 3)
	// species must come before pokemon that reference them
	_, ok := models[0].(*schema.Species)
	assert.True(t, ok)
}

func TestConstraints(t *testing.T) {
	cs := schema.Constraints()
	assert.Len(t, cs, 3)

	names := make(map[string]schema.Constraint)
	for _, c := range cs {
		assert.NotEmpty(t, c.Table)
		assert.True(t, strings.HasPrefix(c.Definition, "FOREIGN KEY"))
		names[c.Name] = c
	}

	evo := names["fk_pokemon_species_evolves_from"]
	assert.Contains(t, evo.Definition, "ON DELETE SET NULL")
	assert.Contains(t, evo.Definition, "DEFERRABLE INITIALLY DEFERRED")

	types := names["fk_pokemon_types_pokemon"]
	assert.Contains(t, types.Definition, "ON DELETE CASCADE")
}
