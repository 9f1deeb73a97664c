package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the record store whether a driver error means
// the database is unreachable for now or that the statement itself failed.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be
	// transient.
	NonRetryable ErrorClassification = iota

	// Retryable errors surface to callers as [ErrStoreUnavailable].
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError treats these SQLSTATE classes as transient:
//   - 08 connection exception
//   - 40 transaction rollback (serialization failure, deadlock)
//   - 53 insufficient resources (too many connections, out of memory)
//   - 57 operator intervention (shutdown, cannot connect now)
//
// Everything else, such as constraint violations or a missing records table,
// is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	}

	return NonRetryable
}
