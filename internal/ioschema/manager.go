// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/gnames/pokedb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the pokedex.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) pokedex.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema using GORM AutoMigrate
// and adds foreign key constraints between the tables.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	if err = m.addConstraints(ctx); err != nil {
		return err
	}

	slog.Info("Schema created", "tables", len(schema.AllModels()))
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate. Constraints are re-applied, so databases
// created before they existed get them too.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	if err = m.addConstraints(ctx); err != nil {
		return err
	}

	slog.Info("Schema migrated")
	return nil
}

func (m *manager) gorm() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}

// addConstraints drops and re-adds foreign keys from
// schema.Constraints, which keeps the operation idempotent.
func (m *manager) addConstraints(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, c := range schema.Constraints() {
		for _, q := range constraintSQL(c) {
			if _, err := pool.Exec(ctx, q); err != nil {
				return ConstraintError(c.Table, c.Name, err)
			}
		}
	}
	return nil
}
