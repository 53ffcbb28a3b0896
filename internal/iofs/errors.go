package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// CreateDirError is returned when a directory cannot be created.
func CreateDirError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create %s",
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot create directory %s: %w", dir, err),
	}
}

// CopyFileError is returned when the default config cannot be written.
func CopyFileError(file string, err error) error {
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  "Cannot copy config file to %s",
		Vars: []any{file},
		Err:  fmt.Errorf("cannot copy file to %s: %w", file, err),
	}
}

// ReadFileError is returned when a file exists but cannot be read.
func ReadFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
