package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/migrations"
)

const (
	pgPutQuery = `INSERT INTO records (record_key,value) VALUES ($1,$2) ON CONFLICT (record_key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`
	pgGetQuery = `SELECT value FROM records WHERE record_key = $1`
)

func newTestRecordRepo(t *testing.T) (RecordStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}
	return NewRecordRepository(db, l), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestRecordRepository_Put(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(pgPutQuery)).
					WithArgs("abc123", `{"encrypted":"x","crypto_type":"legacy"}`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no rows affected",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(pgPutQuery)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRecordNotSaved,
		},
		{
			name: "connection failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(pgPutQuery)).
					WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrStoreUnavailable,
		},
		{
			name: "bad connection",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(pgPutQuery)).
					WillReturnError(driver.ErrBadConn)
			},
			wantErr: ErrStoreUnavailable,
		},
		{
			name: "constraint violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(pgPutQuery)).
					WillReturnError(pgError(pgerrcode.NotNullViolation))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRecordRepo(t)
			tt.setup(mock)

			err := repo.Put(context.Background(), "abc123", `{"encrypted":"x","crypto_type":"legacy"}`)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(pgGetQuery)).
					WithArgs("abc123").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"encrypted":"x"}`))
			},
			want: `{"encrypted":"x"}`,
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(pgGetQuery)).
					WithArgs("abc123").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "deadlock",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(pgGetQuery)).
					WillReturnError(pgError(pgerrcode.DeadlockDetected))
			},
			wantErr: ErrStoreUnavailable,
		},
		{
			name: "undefined table",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(pgGetQuery)).
					WillReturnError(pgError(pgerrcode.UndefinedTable))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "connection done",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(pgGetQuery)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRecordRepo(t)
			tt.setup(mock)

			got, err := repo.Get(context.Background(), "abc123")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_ClassifyKeepsDriverError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}
	cause := errors.New("syntax")

	err := db.classify(ErrExecutingQuery, cause)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}
