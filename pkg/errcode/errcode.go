package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaConstraintError

	// Store errors
	StoreNotFoundError
	StoreConnectionError
	StoreTransactionError
	StoreSequenceError
	StoreSpeciesError
	StoreCreatureError
	StoreReadError
	StoreCommitError

	// Seed errors
	SeedFileNotFoundError
	SeedParseError
	SeedNotEmptyError
	SeedCopyError

	// Optimizer errors
	OptimizerOrphanRemovalError
	OptimizerSequenceError
	OptimizerVacuumError

	// HTTP errors
	ServerStartError
)
