package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/pokedb/internal/iodb"
	"github.com/gnames/pokedb/internal/ioschema"
	"github.com/gnames/pokedb/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_NotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	require.NotNil(t, mgr)

	assert.Error(t, mgr.Create(context.Background()))
	assert.Error(t, mgr.Migrate(context.Background()))
}

func TestManager_CreateAndMigrate(t *testing.T) {
	op := iotesting.Connect(t)
	ctx := context.Background()

	require.NoError(t, op.DropAllTables(ctx))

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))

	for _, table := range []string{"pokemon_species", "pokemon", "pokemon_types"} {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	var count int
	err := op.Pool().QueryRow(ctx, `
		SELECT count(*) FROM pg_constraint
		WHERE contype = 'f' AND conname LIKE 'fk_pokemon%'`,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// both operations are idempotent
	require.NoError(t, mgr.Migrate(ctx))
	require.NoError(t, mgr.Create(ctx))

	err = op.Pool().QueryRow(ctx, `
		SELECT count(*) FROM pg_constraint
		WHERE contype = 'f' AND conname LIKE 'fk_pokemon%'`,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
