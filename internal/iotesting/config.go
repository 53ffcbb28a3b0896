// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gnames/pokedb/internal/iodb"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/spf13/viper"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "pokedb_test"

	// testLockKey serializes integration tests of different packages
	// that share the test database.
	testLockKey int64 = 0x706f6b6574657374
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies POKEDB_DATABASE_* environment variables
// and overrides the database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	v := viper.New()
	v.SetEnvPrefix("POKEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{
		"database.host", "database.port", "database.user",
		"database.password", "database.ssl_mode",
	} {
		_ = v.BindEnv(key)
	}

	var cfgEnv config.Config
	_ = v.Unmarshal(&cfgEnv)

	cfg := config.New()
	cfg.Update(cfgEnv.ToOptions())

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
// This is useful when you only need database config without the full Config struct.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// Connect returns an operator connected to the test database.
// The test is skipped in short mode or when PostgreSQL is unreachable,
// and the operator is closed when the test finishes. While the test runs
// it holds a session advisory lock, so tests from other packages wait
// instead of dropping each other's tables.
func Connect(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, GetTestDatabaseConfig()); err != nil {
		t.Skipf("PostgreSQL test database is not available: %v", err)
	}

	conn, err := op.Pool().Acquire(context.Background())
	if err != nil {
		_ = op.Close()
		t.Fatalf("Cannot acquire connection: %v", err)
	}
	_, err = conn.Exec(context.Background(),
		"SELECT pg_advisory_lock($1)", testLockKey)
	if err != nil {
		conn.Release()
		_ = op.Close()
		t.Fatalf("Cannot lock test database: %v", err)
	}

	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(),
			"SELECT pg_advisory_unlock($1)", testLockKey)
		conn.Release()
		_ = op.Close()
	})
	return op
}
