package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "pokedb", "postgres",
		originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Equal(t, "localhost", gnErr.Vars[0])
	assert.Equal(t, 5432, gnErr.Vars[1])
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "localhost:5432/pokedb")
}

func TestErrorCodes(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"table exists", TableExistsCheckError("pokemon", cause),
			errcode.DBTableExistsCheckError},
		{"query tables", QueryTablesError(cause), errcode.DBQueryTablesError},
		{"scan tables", ScanTableError(cause), errcode.DBScanTableError},
		{"drop table", DropTableError("pokemon", cause),
			errcode.DBDropTableError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gnErr *gn.Error
			require.True(t, errors.As(tt.err, &gnErr))
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Error(t, gnErr.Err)
		})
	}
}
