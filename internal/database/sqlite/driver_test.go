package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.ErrKind
	}{
		{"canceled", context.Canceled, errs.ErrKindTimeout},
		{"missing table", errors.New("SQL logic error: no such table: users (1)"), errs.ErrKindNotFound},
		{"cannot open", errors.New("unable to open database file: out of memory (14)"), errs.ErrKindConnectionFailed},
		{"readonly", errors.New("attempt to write a readonly database (8)"), errs.ErrKindPermissionDenied},
		{"syntax", errors.New("SQL logic error: near \"FORM\": syntax error (1)"), errs.ErrKindQueryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapError(tt.err, "query failed").Kind)
		})
	}
}

func TestNew_QueryMissingTable(t *testing.T) {
	cfg := database.DefaultConfig(":memory:")
	cfg.Driver = database.DriverSQLite
	cfg.MaxConns = 1

	db, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Query(context.Background(), "SELECT * FROM nowhere")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
