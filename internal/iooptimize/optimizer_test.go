package iooptimize_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/iodb"
	"github.com/gnames/pokedb/internal/iooptimize"
	"github.com/gnames/pokedb/internal/ioschema"
	"github.com/gnames/pokedb/internal/iotesting"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) db.Operator {
	t.Helper()
	op := iotesting.Connect(t)
	ctx := context.Background()

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx))
	return op
}

func exec(t *testing.T, op db.Operator, q string, args ...any) {
	t.Helper()
	_, err := op.Pool().Exec(context.Background(), q, args...)
	require.NoError(t, err)
}

func addSpecies(t *testing.T, op db.Operator, id int, name string, from *int) {
	t.Helper()
	exec(t, op, `
INSERT INTO pokemon_species (
	id, identifier, generation_id, evolves_from_species_id,
	evolution_chain_id, gender_rate, capture_rate, base_happiness, is_baby,
	hatch_counter, has_gender_differences, forms_switchable, "order"
) VALUES ($1, $2, 1, $3, 1, 4, 45, 50, false, 20, false, false, $1)`,
		id, name, from)
}

func addPokemon(t *testing.T, op db.Operator, id, speciesID int, name string) {
	t.Helper()
	exec(t, op, `
INSERT INTO pokemon (
	id, identifier, species_id, height, weight, base_experience, "order",
	is_default
) VALUES ($1, $2, $3, 7, 69, 64, $1, true)`,
		id, name, speciesID)
}

func count(t *testing.T, op db.Operator, table string) int64 {
	t.Helper()
	var res int64
	err := op.Pool().QueryRow(context.Background(),
		"SELECT count(*) FROM "+table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestOptimize(t *testing.T) {
	op := setup(t)
	ctx := context.Background()

	// a database that predates the type foreign key
	exec(t, op, `ALTER TABLE pokemon_types
	DROP CONSTRAINT fk_pokemon_types_pokemon`)

	one := 1
	addSpecies(t, op, 1, "bulbasaur", nil)
	addSpecies(t, op, 2, "ivysaur", &one)
	addPokemon(t, op, 2, 2, "ivysaur")
	exec(t, op, "INSERT INTO pokemon_types (id, type_id, slot) VALUES (2, 12, 1)")
	exec(t, op, "INSERT INTO pokemon_types (id, type_id, slot) VALUES (99, 4, 1)")
	exec(t, op, "INSERT INTO pokemon_types (id, type_id, slot) VALUES (99, 3, 2)")

	rep, err := iooptimize.NewOptimizer(op).Optimize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rep.DanglingTypes)
	assert.Equal(t, int64(1), rep.OrphanSpecies)

	assert.Equal(t, int64(1), count(t, op, "pokemon_species"))
	assert.Equal(t, int64(1), count(t, op, "pokemon_types"))

	var from *int
	err = op.Pool().QueryRow(ctx,
		"SELECT evolves_from_species_id FROM pokemon_species WHERE id = 2",
	).Scan(&from)
	require.NoError(t, err)
	assert.Nil(t, from)

	var next int64
	err = op.Pool().QueryRow(ctx,
		"SELECT nextval(pg_get_serial_sequence('pokemon', 'id'))",
	).Scan(&next)
	require.NoError(t, err)
	assert.Equal(t, int64(3), next)
}

func TestOptimizeClean(t *testing.T) {
	op := setup(t)

	addSpecies(t, op, 1, "bulbasaur", nil)
	addPokemon(t, op, 1, 1, "bulbasaur")

	opt := iooptimize.NewOptimizer(op)
	for range 2 {
		rep, err := opt.Optimize(context.Background())
		require.NoError(t, err)
		assert.Zero(t, rep.DanglingTypes)
		assert.Zero(t, rep.OrphanSpecies)
	}
	assert.Equal(t, int64(1), count(t, op, "pokemon"))
}

func TestOptimizeNotConnected(t *testing.T) {
	_, err := iooptimize.NewOptimizer(iodb.NewPgxOperator()).
		Optimize(context.Background())
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
