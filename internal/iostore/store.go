// Package iostore implements pokedex.Store on PostgreSQL. A pokemon
// record is kept in two tables, pokemon and pokemon_species; every write
// touches both of them inside one transaction.
package iostore

import (
	"context"
	"log/slog"

	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type store struct {
	operator db.Operator
}

// New creates a Store that uses the pool of a connected operator.
func New(op db.Operator) pokedex.Store {
	return &store{operator: op}
}

func (s *store) pool() (*pgxpool.Pool, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}
	return pool, nil
}

// Ping checks that the database is reachable.
func (s *store) Ping(ctx context.Context) error {
	pool, err := s.pool()
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// List returns a page of records ordered by id.
func (s *store) List(
	ctx context.Context,
	page pokedex.Page,
) ([]pokedex.Pokemon, error) {
	pool, err := s.pool()
	if err != nil {
		return nil, err
	}
	return listPokemon(ctx, pool, page)
}

// Get returns one record.
func (s *store) Get(ctx context.Context, id int) (pokedex.Pokemon, error) {
	pool, err := s.pool()
	if err != nil {
		return pokedex.Pokemon{}, err
	}
	return getPokemon(ctx, pool, "get", id)
}

// Create reconciles id sequences, inserts the species row and then the
// pokemon row, and reads the joined record back. The advisory lock
// taken during reconciliation is held until commit.
func (s *store) Create(
	ctx context.Context,
	p pokedex.Pokemon,
) (pokedex.Pokemon, error) {
	const op = "create"
	var res pokedex.Pokemon

	pool, err := s.pool()
	if err != nil {
		return res, err
	}

	err = withTx(ctx, pool, op, func(tx pgx.Tx) error {
		if err := ReconcileSequences(ctx, tx); err != nil {
			return err
		}

		speciesID, err := insertSpecies(ctx, tx, op, speciesOf(p))
		if err != nil {
			return err
		}

		id, err := insertCreature(ctx, tx, op, creatureOf(p, speciesID))
		if err != nil {
			return err
		}

		res, err = getPokemon(ctx, tx, op, id)
		return err
	})
	if err != nil {
		return pokedex.Pokemon{}, err
	}

	slog.Debug("pokemon created",
		"id", res.ID, "species_id", res.SpeciesID,
		"identifier", res.Identifier)
	return res, nil
}

// Update replaces both rows of the record.
func (s *store) Update(
	ctx context.Context,
	id int,
	p pokedex.Pokemon,
) (pokedex.Pokemon, error) {
	const op = "update"
	var res pokedex.Pokemon

	pool, err := s.pool()
	if err != nil {
		return res, err
	}

	err = withTx(ctx, pool, op, func(tx pgx.Tx) error {
		speciesID, err := updateCreature(ctx, tx, op, id, creatureOf(p, 0))
		if err != nil {
			return err
		}

		if err = updateSpecies(ctx, tx, op, speciesID, speciesOf(p)); err != nil {
			return err
		}

		res, err = getPokemon(ctx, tx, op, id)
		return err
	})
	if err != nil {
		return pokedex.Pokemon{}, err
	}

	slog.Debug("pokemon updated", "id", id, "species_id", res.SpeciesID)
	return res, nil
}

// Delete removes the record, its type assignments and, when no other
// pokemon uses it, its species. Species that evolved from the removed
// species lose their back-reference.
func (s *store) Delete(ctx context.Context, id int) error {
	const op = "delete"

	pool, err := s.pool()
	if err != nil {
		return err
	}

	return withTx(ctx, pool, op, func(tx pgx.Tx) error {
		if err := deleteTypes(ctx, tx, op, id); err != nil {
			return err
		}

		speciesID, err := deleteCreature(ctx, tx, op, id)
		if err != nil {
			return err
		}

		inUse, err := speciesInUse(ctx, tx, op, speciesID)
		if err != nil {
			return err
		}
		if inUse {
			slog.Debug("species kept, other pokemon use it",
				"id", id, "species_id", speciesID)
			return nil
		}

		detached, err := detachEvolutions(ctx, tx, op, speciesID)
		if err != nil {
			return err
		}

		err = deleteSpecies(ctx, tx, op, speciesID)
		if IsNotFound(err) {
			slog.Warn("pokemon referenced a missing species",
				"id", id, "species_id", speciesID)
			err = nil
		}
		if err != nil {
			return err
		}

		slog.Debug("pokemon deleted",
			"id", id, "species_id", speciesID, "detached", detached)
		return nil
	})
}
