// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cookie-relay/internal/logger"
)

// recordRepository is the SQL implementation of [RecordStore] shared by the
// PostgreSQL and SQLite backends. It reads and writes the "records" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type recordRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewRecordRepository constructs a [RecordStore] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating record repository")
	return &recordRepository{
		db:      db,
		builder: statementBuilder(db.dialect),
		logger:  logger,
	}
}

// Put upserts value under key. The last write wins.
//
// Error handling:
//   - connection loss, busy database or other transient driver errors → [ErrStoreUnavailable].
//   - any other driver error → [ErrExecutingStatement].
//   - zero affected rows → [ErrRecordNotSaved].
func (r *recordRepository) Put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutRecordQuery(r.builder, key, value)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Put").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Put").Str("key", key).Msg("error executing upsert")
		return r.db.classify(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		log.Error().Str("func", "*recordRepository.Put").Str("key", key).Msg("upsert affected no rows")
		return ErrRecordNotSaved
	}

	return nil
}

// Get returns the value stored under key.
//
// Error handling:
//   - no row → [ErrRecordNotFound].
//   - connection loss, busy database or other transient driver errors → [ErrStoreUnavailable].
//   - any other driver error → [ErrExecutingQuery] or [ErrScanningRow].
func (r *recordRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.builder, key)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Get").Msg("error building select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*recordRepository.Get").Str("key", key).Msg("error executing select")
		return "", r.db.classify(ErrExecutingQuery, err)
	}

	var value string
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.Get").Str("key", key).Msg("error scanning record")
		return "", r.db.classify(ErrScanningRow, err)
	}

	return value, nil
}
