package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned by Get when no record exists under the
	// requested key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStoreUnavailable is returned when the backing store is not
	// configured or cannot be reached (connection loss, database locked).
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrRecordNotSaved is returned when an upsert completes without error
	// but reports zero affected rows.
	ErrRecordNotSaved = errors.New("record was not saved")
)

// Low-level database operation errors. These wrap driver errors when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a record value fails.
	ErrScanningRow = errors.New("failed to scan record row")
)
