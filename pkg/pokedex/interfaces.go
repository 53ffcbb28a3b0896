package pokedex

import (
	"context"
)

// Store reads and writes pokemon records. Every write runs in a single
// transaction that covers both rows of the record.
type Store interface {
	// List returns a page of records in ascending id order.
	List(ctx context.Context, page Page) ([]Pokemon, error)

	// Get returns the record with the given id, or a NotFound error.
	Get(ctx context.Context, id int) (Pokemon, error)

	// Create inserts the species row and then the pokemon row, and
	// returns the record as read back from the database. The ID and
	// SpeciesID of the input are ignored.
	Create(ctx context.Context, p Pokemon) (Pokemon, error)

	// Update replaces every field of both rows of the record with the
	// given id. It returns a NotFound error if there is no such record.
	Update(ctx context.Context, id int, p Pokemon) (Pokemon, error)

	// Delete removes the record with the given id together with its
	// type assignments and its species, if no other pokemon uses that
	// species. It returns a NotFound error if there is no such record.
	Delete(ctx context.Context, id int) error

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
}

// SchemaManager creates and migrates the database schema.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates tables with GORM AutoMigrate and adds foreign
	// key constraints.
	Create(ctx context.Context) error

	// Migrate updates existing tables to the current models.
	Migrate(ctx context.Context) error
}

// Seeder bulk-loads pre-numbered records from CSV files.
type Seeder interface {
	// Seed loads species, pokemon and type assignments in one
	// transaction. Sequences are left untouched.
	Seed(ctx context.Context) (SeedReport, error)
}

// SeedReport summarizes a seed run.
type SeedReport struct {
	Species  int64
	Pokemon  int64
	Types    int64
	Duration float64
}

// Optimizer performs maintenance of a seeded or long-running database.
type Optimizer interface {
	// Optimize removes dangling rows, reconciles sequences and
	// refreshes planner statistics.
	Optimize(ctx context.Context) (OptimizeReport, error)
}

// OptimizeReport summarizes an optimize run.
type OptimizeReport struct {
	DanglingTypes int64
	OrphanSpecies int64
	Duration      float64
}
