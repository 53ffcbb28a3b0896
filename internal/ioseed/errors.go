package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// NotConnectedError is returned when seeding is attempted without a
// database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Seed operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// FileNotFoundError is returned when one of the CSV files is missing.
func FileNotFoundError(path string, err error) error {
	msg := `Seed file not found

<em>Path:</em> %s

<em>How to fix:</em>
  1. Download the CSV files of the Pokemon data dump
  2. Point 'pokedb seed --dir' to the directory with them`

	return &gn.Error{
		Code: errcode.SeedFileNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("seed file %s: %w", path, err),
	}
}

// ParseError is returned when a CSV file cannot be decoded.
func ParseError(file string, line int, err error) error {
	msg := `Cannot parse <em>%s</em> at line <em>%d</em>`

	return &gn.Error{
		Code: errcode.SeedParseError,
		Msg:  msg,
		Vars: []any{file, line},
		Err:  fmt.Errorf("parse %s line %d: %w", file, line, err),
	}
}

// NotEmptyError is returned when the tables already have records and
// the seed is not forced.
func NotEmptyError(count int64) error {
	msg := `Database already has <em>%d</em> records

<em>How to fix:</em>
  1. Run 'pokedb seed --force' to replace existing records
  2. Or run 'pokedb create --force' to start from an empty schema`

	return &gn.Error{
		Code: errcode.SeedNotEmptyError,
		Msg:  msg,
		Vars: []any{count},
		Err:  fmt.Errorf("database is not empty: %d records", count),
	}
}

// CopyError is returned when rows cannot be loaded into a table.
func CopyError(table string, err error) error {
	msg := `Cannot load rows into <em>%s</em>

<em>Possible causes:</em>
  - Schema does not exist, run 'pokedb create'
  - CSV rows reference ids that are not in the data`

	return &gn.Error{
		Code: errcode.SeedCopyError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("copy %s: %w", table, err),
	}
}
