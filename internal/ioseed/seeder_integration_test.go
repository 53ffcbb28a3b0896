package ioseed_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/ioschema"
	"github.com/gnames/pokedb/internal/ioseed"
	"github.com/gnames/pokedb/internal/iostore"
	"github.com/gnames/pokedb/internal/iotesting"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/errcode"
	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...config.Option) (db.Operator, pokedex.Seeder) {
	t.Helper()
	op := iotesting.Connect(t)
	ctx := context.Background()

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	cfg := config.New()
	opts = append([]config.Option{config.OptSeedDir("testdata")}, opts...)
	cfg.Update(opts)
	return op, ioseed.New(cfg, op)
}

func count(t *testing.T, op db.Operator, table string) int64 {
	t.Helper()
	var res int64
	err := op.Pool().QueryRow(context.Background(),
		"SELECT count(*) FROM "+table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestSeed(t *testing.T) {
	op, sd := setup(t)
	ctx := context.Background()

	rep, err := sd.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), rep.Species)
	assert.Equal(t, int64(6), rep.Pokemon)
	assert.Equal(t, int64(10), rep.Types)

	assert.Equal(t, int64(5), count(t, op, "pokemon_species"))
	assert.Equal(t, int64(6), count(t, op, "pokemon"))
	assert.Equal(t, int64(10), count(t, op, "pokemon_types"))

	store := iostore.New(op)
	mega, err := store.Get(ctx, 10033)
	require.NoError(t, err)
	assert.Equal(t, "venusaur-mega", mega.Identifier)
	assert.Equal(t, 3, mega.SpeciesID)
	require.NotNil(t, mega.EvolvesFromSpeciesID)
	assert.Equal(t, 2, *mega.EvolvesFromSpeciesID)

	// ids of new records continue after the seeded ones
	created, err := store.Create(ctx, pokedex.Pokemon{
		Identifier:       "pikachu",
		GenerationID:     1,
		EvolutionChainID: 10,
		GenderRate:       4,
		Order:            35,
	})
	require.NoError(t, err)
	assert.Equal(t, 10034, created.ID)
	assert.Equal(t, 447, created.SpeciesID)
}

func TestSeedNotEmpty(t *testing.T) {
	op, sd := setup(t)
	ctx := context.Background()

	_, err := sd.Seed(ctx)
	require.NoError(t, err)

	_, err = sd.Seed(ctx)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SeedNotEmptyError, gnErr.Code)
	assert.Equal(t, int64(6), count(t, op, "pokemon"))
}

func TestSeedForce(t *testing.T) {
	op, sd := setup(t, config.OptSeedForce(true))
	ctx := context.Background()

	_, err := sd.Seed(ctx)
	require.NoError(t, err)

	rep, err := sd.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), rep.Pokemon)
	assert.Equal(t, int64(6), count(t, op, "pokemon"))
	assert.Equal(t, int64(10), count(t, op, "pokemon_types"))
}

func TestSeedBrokenFiles(t *testing.T) {
	op, sd := setup(t,
		config.OptSeedDir(filepath.Join("testdata", "broken")))

	_, err := sd.Seed(context.Background())
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SeedParseError, gnErr.Code)
	assert.Equal(t, int64(0), count(t, op, "pokemon_species"))
}
