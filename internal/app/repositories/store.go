package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// QuerierProvider hands out the querier bound to a request context
type QuerierProvider interface {
	Querier(ctx context.Context) db.Querier
}

// table describes how one record type maps onto its SQL table
type table[E any] struct {
	name      string
	columns   []string // every column, matching the entity's db tags
	keyColumn string   // lookup column for Get and Delete
	orderBy   string
	id        func(E) int64
	setID     func(*E, int64)
	values    func(E) map[string]interface{} // every column except id
	search    func(criterion string) squirrel.Sqlizer
}

// sqlStore implements list/get/insert/update/delete/search for one table
type sqlStore[E any, K comparable] struct {
	conn QuerierProvider
	sb   squirrel.StatementBuilderType
	t    table[E]
}

func newSQLStore[E any, K comparable](conn QuerierProvider, t table[E]) *sqlStore[E, K] {
	return &sqlStore[E, K]{
		conn: conn,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		t:    t,
	}
}

func (s *sqlStore[E, K]) listQuery() squirrel.SelectBuilder {
	return s.sb.Select(s.t.columns...).
		From(s.t.name).
		OrderBy(s.t.orderBy)
}

func (s *sqlStore[E, K]) getQuery(key K) squirrel.SelectBuilder {
	return s.sb.Select(s.t.columns...).
		From(s.t.name).
		Where(squirrel.Eq{s.t.keyColumn: key}).
		Limit(1)
}

func (s *sqlStore[E, K]) insertQuery(entity E) squirrel.InsertBuilder {
	return s.sb.Insert(s.t.name).
		SetMap(s.t.values(entity)).
		Suffix("RETURNING id")
}

func (s *sqlStore[E, K]) updateQuery(entity E) squirrel.UpdateBuilder {
	return s.sb.Update(s.t.name).
		SetMap(s.t.values(entity)).
		Where(squirrel.Eq{"id": s.t.id(entity)})
}

func (s *sqlStore[E, K]) deleteQuery(key K) squirrel.DeleteBuilder {
	return s.sb.Delete(s.t.name).
		Where(squirrel.Eq{s.t.keyColumn: key})
}

func (s *sqlStore[E, K]) searchQuery(criterion string) squirrel.SelectBuilder {
	return s.sb.Select(s.t.columns...).
		From(s.t.name).
		Where(s.t.search(criterion)).
		OrderBy(s.t.orderBy)
}

// List returns every record in storage order
func (s *sqlStore[E, K]) List(ctx context.Context) ([]E, error) {
	return s.collect(ctx, "list", s.listQuery())
}

// Get returns the record with the given key, or apperrors.ErrResourceNotFound
func (s *sqlStore[E, K]) Get(ctx context.Context, key K) (*E, error) {
	sql, args, err := s.getQuery(key).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Msg("Error building get SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", s.t.name, err)
	}

	rows, err := s.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Msg("Error executing get query")
		return nil, fmt.Errorf("error getting %s record: %w", s.t.name, err)
	}

	entity, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("table", s.t.name).Interface("key", key).Msg("Error scanning row")
		return nil, fmt.Errorf("error scanning %s record: %w", s.t.name, err)
	}

	return &entity, nil
}

// Insert stores a new record, sets its generated id and returns it, or 0 when storage returned none
func (s *sqlStore[E, K]) Insert(ctx context.Context, entity *E) (int64, error) {
	sql, args, err := s.insertQuery(*entity).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build insert %s query: %w", s.t.name, err)
	}

	var id int64
	err = s.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		logger.Warn().Err(err).Str("table", s.t.name).Msg("Error executing insert query")
		return 0, fmt.Errorf("error inserting %s record: %w", s.t.name, err)
	}

	if id != 0 {
		s.t.setID(entity, id)
	}
	return id, nil
}

// Update replaces the record with the entity's id and returns the affected row count
func (s *sqlStore[E, K]) Update(ctx context.Context, entity E) (int64, error) {
	sql, args, err := s.updateQuery(entity).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Msg("Error building update SQL")
		return 0, fmt.Errorf("failed to build update %s query: %w", s.t.name, err)
	}

	tag, err := s.conn.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Warn().Err(err).Str("table", s.t.name).Int64("id", s.t.id(entity)).Msg("Error executing update query")
		return 0, fmt.Errorf("error updating %s record: %w", s.t.name, err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes the record with the given key and returns the affected row count
func (s *sqlStore[E, K]) Delete(ctx context.Context, key K) (int64, error) {
	sql, args, err := s.deleteQuery(key).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Msg("Error building delete SQL")
		return 0, fmt.Errorf("failed to build delete %s query: %w", s.t.name, err)
	}

	tag, err := s.conn.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Warn().Err(err).Str("table", s.t.name).Interface("key", key).Msg("Error executing delete query")
		return 0, fmt.Errorf("error deleting %s record: %w", s.t.name, err)
	}

	return tag.RowsAffected(), nil
}

// Search returns the records matching criterion in storage order
func (s *sqlStore[E, K]) Search(ctx context.Context, criterion string) ([]E, error) {
	return s.collect(ctx, "search", s.searchQuery(criterion))
}

func (s *sqlStore[E, K]) collect(ctx context.Context, op string, query squirrel.SelectBuilder) ([]E, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Str("op", op).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s %s query: %w", op, s.t.name, err)
	}

	rows, err := s.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Str("op", op).Msg("Error executing query")
		return nil, fmt.Errorf("error querying %s: %w", s.t.name, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		logger.Error().Err(err).Str("table", s.t.name).Str("op", op).Msg("Error scanning rows")
		return nil, fmt.Errorf("error scanning %s rows: %w", s.t.name, err)
	}

	if records == nil {
		records = []E{}
	}
	return records, nil
}
