package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cookie-relay/migrations"
)

const (
	recordsTable     = "records"
	recordKeyColumn  = "record_key"
	valueColumn      = "value"
	upsertRecordTail = "ON CONFLICT (record_key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP"
)

// statementBuilder returns a squirrel builder with the placeholder format of
// the given dialect.
func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildPutRecordQuery(builder sq.StatementBuilderType, key, value string) (string, []any, error) {
	return builder.
		Insert(recordsTable).
		Columns(recordKeyColumn, valueColumn).
		Values(key, value).
		Suffix(upsertRecordTail).
		ToSql()
}

func buildGetRecordQuery(builder sq.StatementBuilderType, key string) (string, []any, error) {
	return builder.
		Select(valueColumn).
		From(recordsTable).
		Where(sq.Eq{recordKeyColumn: key}).
		ToSql()
}
