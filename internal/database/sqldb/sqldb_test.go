package sqldb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFailed(err error, msg string) *errs.Error {
	return errs.Wrap(errs.ErrKindQueryFailed, msg, err)
}

func TestDB_Query(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []string
		expectErr bool
	}{
		{
			name: "rows returned",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT name FROM t").
					WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("a").AddRow("b"))
			},
			want: []string{"a", "b"},
		},
		{
			name: "query error is mapped",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT name FROM t").WillReturnError(assert.AnError)
			},
			expectErr: true,
		},
		{
			name: "iteration error is mapped",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT name FROM t").
					WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("a").RowError(0, assert.AnError))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			d := New(db, database.DialectMySQL, queryFailed)
			rows, err := d.Query(context.Background(), "SELECT name FROM t")
			var got []string
			if err == nil {
				got, err = database.ScanStrings(rows)
			}

			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, errs.IsQueryFailed(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_QueryRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT version").WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("8.0.36"))
	mock.ExpectQuery("SELECT missing").WillReturnRows(sqlmock.NewRows([]string{"v"}))

	d := New(db, database.DialectMySQL, queryFailed)

	var v string
	require.NoError(t, d.QueryRow(context.Background(), "SELECT version").Scan(&v))
	assert.Equal(t, "8.0.36", v)

	err = d.QueryRow(context.Background(), "SELECT missing").Scan(&v)
	assert.True(t, errs.IsQueryFailed(err))
}

func TestDB_PingAndClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("down"))
	mock.ExpectClose()

	d := New(db, database.DialectSQLite, queryFailed)
	assert.Equal(t, database.DialectSQLite, d.Dialect())
	assert.Error(t, d.Ping(context.Background()))

	d.Close()
	assert.NoError(t, mock.ExpectationsWereMet())
}
