// Package ioseed implements pokedex.Seeder. It loads CSV files laid
// out like the public Pokemon data dumps into an empty database,
// keeping the ids of the dump.
package ioseed

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/gnames/pokedb/pkg/schema"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

type seeder struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a Seeder that reads files from cfg.Seed.Dir.
func New(cfg *config.Config, op db.Operator) pokedex.Seeder {
	return &seeder{cfg: cfg, operator: op}
}

// dataset keeps decoded rows of all three files.
type dataset struct {
	species []schema.Species
	pokemon []schema.Pokemon
	types   []schema.PokemonType
}

// Seed parses the CSV files and copies their rows into the database in
// one transaction. Id sequences are left alone, the store reconciles
// them before the next insert.
func (s *seeder) Seed(ctx context.Context) (pokedex.SeedReport, error) {
	var res pokedex.SeedReport
	start := time.Now()

	pool := s.operator.Pool()
	if pool == nil {
		return res, NotConnectedError()
	}

	slog.Info("Reading seed files", "dir", s.cfg.Seed.Dir)
	data, err := load(ctx, s.cfg.Seed.Dir)
	if err != nil {
		return res, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return res, CopyError("pokemon_species", err)
	}
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err = s.prepare(ctx, tx); err != nil {
		return res, err
	}

	res.Species, err = copyRows(ctx, tx, "pokemon_species", speciesColumns,
		data.species, speciesValues)
	if err != nil {
		return res, err
	}

	res.Pokemon, err = copyRows(ctx, tx, "pokemon", pokemonColumns,
		data.pokemon, pokemonValues)
	if err != nil {
		return res, err
	}

	res.Types, err = copyRows(ctx, tx, "pokemon_types", typesColumns,
		data.types, typesValues)
	if err != nil {
		return res, err
	}

	// deferred evolution references are checked here
	if err = tx.Commit(ctx); err != nil {
		return pokedex.SeedReport{}, CopyError("pokemon_species", err)
	}

	res.Duration = time.Since(start).Seconds()
	slog.Info("Seed completed",
		"species", res.Species,
		"pokemon", res.Pokemon,
		"types", res.Types,
		"duration", gnfmt.TimeString(res.Duration),
	)
	gn.Info(
		"Loaded <em>%s</em> species, <em>%s</em> pokemon and "+
			"<em>%s</em> type assignments",
		humanize.Comma(res.Species),
		humanize.Comma(res.Pokemon),
		humanize.Comma(res.Types),
	)
	return res, nil
}

// prepare refuses to seed a database with records, or empties it when
// the seed is forced.
func (s *seeder) prepare(ctx context.Context, tx pgx.Tx) error {
	var count int64
	q := `SELECT (SELECT count(*) FROM pokemon) +
	(SELECT count(*) FROM pokemon_species)`
	if err := tx.QueryRow(ctx, q).Scan(&count); err != nil {
		return CopyError("pokemon", err)
	}
	if count == 0 {
		return nil
	}

	if !s.cfg.Seed.Force {
		return NotEmptyError(count)
	}

	slog.Warn("Removing existing records before seed", "count", count)
	_, err := tx.Exec(ctx, "TRUNCATE pokemon_types, pokemon, pokemon_species")
	if err != nil {
		return CopyError("pokemon", err)
	}
	return nil
}

// load decodes the three files concurrently.
func load(ctx context.Context, dir string) (dataset, error) {
	var data dataset
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.species, err = readFile(gCtx, dir, speciesFile, decodeSpecies)
		return err
	})
	g.Go(func() error {
		var err error
		data.pokemon, err = readFile(gCtx, dir, pokemonFile, decodePokemon)
		return err
	})
	g.Go(func() error {
		var err error
		data.types, err = readFile(gCtx, dir, typesFile, decodeType)
		return err
	})

	if err := g.Wait(); err != nil {
		return dataset{}, err
	}

	slog.Info("Seed files decoded",
		"species", len(data.species),
		"pokemon", len(data.pokemon),
		"types", len(data.types),
	)
	return data, nil
}

func readFile[T any](
	ctx context.Context,
	dir, name string,
	fn func(*row) T,
) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readCSV(filepath.Join(dir, name), fn)
}

var (
	speciesColumns = []string{
		"id", "identifier", "generation_id", "evolves_from_species_id",
		"evolution_chain_id", "color_id", "shape_id", "habitat_id",
		"gender_rate", "capture_rate", "base_happiness", "is_baby",
		"hatch_counter", "has_gender_differences", "growth_rate_id",
		"forms_switchable", "order", "conquest_order",
	}
	pokemonColumns = []string{
		"id", "identifier", "species_id", "height", "weight",
		"base_experience", "order", "is_default",
	}
	typesColumns = []string{"id", "type_id", "slot"}
)

func speciesValues(s schema.Species) []any {
	return []any{
		s.ID, s.Identifier, s.GenerationID, s.EvolvesFromSpeciesID,
		s.EvolutionChainID, s.ColorID, s.ShapeID, s.HabitatID,
		s.GenderRate, s.CaptureRate, s.BaseHappiness, s.IsBaby,
		s.HatchCounter, s.HasGenderDifferences, s.GrowthRateID,
		s.FormsSwitchable, s.Order, s.ConquestOrder,
	}
}

func pokemonValues(p schema.Pokemon) []any {
	return []any{
		p.ID, p.Identifier, p.SpeciesID, p.Height, p.Weight,
		p.BaseExperience, p.Order, p.IsDefault,
	}
}

func typesValues(t schema.PokemonType) []any {
	return []any{t.ID, t.TypeID, t.Slot}
}

// copyRows streams items into a table with COPY, advancing a progress
// bar per row.
func copyRows[T any](
	ctx context.Context,
	tx pgx.Tx,
	table string,
	columns []string,
	items []T,
	values func(T) []any,
) (int64, error) {
	bar := newProgressBar(len(items), fmt.Sprintf("Loading %s: ", table))
	defer bar.Finish()

	var i int
	src := pgx.CopyFromFunc(func() ([]any, error) {
		if i >= len(items) {
			return nil, nil
		}
		vals := values(items[i])
		i++
		bar.Increment()
		return vals, nil
	})

	count, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, src)
	if err != nil {
		return 0, CopyError(table, err)
	}
	slog.Info("Rows loaded", "table", table, "count", count)
	return count, nil
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
