package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

var (
	// ErrUnknownFilterField is returned when a filter names a field the table does not expose.
	ErrUnknownFilterField = errors.New("unknown filter field")
	ErrNegativeSkip       = errors.New("skip must not be negative")
)

// table runs filtered, ordered, offset-paged reads of one relation into T.
type table[T any] struct {
	db      *database.DB
	name    string
	columns string
	// filters maps a filter key to an equality predicate with one %d placeholder.
	filters map[string]string
}

// where renders filter as a WHERE clause. Keys are rendered in sorted order.
func (t table[T]) where(filter query.Filter) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}

	var (
		clauses []string
		args    []any
	)
	for _, key := range filter.Keys() {
		predicate, ok := t.filters[key]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrUnknownFilterField, key)
		}
		args = append(args, filter[key])
		clauses = append(clauses, fmt.Sprintf(predicate, len(args)))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// findSQL builds the page query. A limit below 1 means no limit.
func (t table[T]) findSQL(filter query.Filter, skip, limit int) (string, []any, error) {
	if skip < 0 {
		return "", nil, fmt.Errorf("%w: %d", ErrNegativeSkip, skip)
	}
	where, args, err := t.where(filter)
	if err != nil {
		return "", nil, err
	}

	sql := "SELECT " + t.columns + " FROM " + t.name + where + " ORDER BY created_at, id"
	if limit > 0 {
		args = append(args, limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if skip > 0 {
		args = append(args, skip)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return sql, args, nil
}

func (t table[T]) find(ctx context.Context, filter query.Filter, skip, limit int) ([]T, error) {
	sql, args, err := t.findSQL(filter, skip, limit)
	if err != nil {
		return nil, err
	}

	rows, err := GetQuerier(ctx, t.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	return collect[T](rows)
}

func collect[T any](rows pgx.Rows) ([]T, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan rows: %w", err)
	}
	return items, nil
}

func (t table[T]) count(ctx context.Context, filter query.Filter) (int64, error) {
	where, args, err := t.where(filter)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := GetQuerier(ctx, t.db).QueryRow(ctx, "SELECT COUNT(*) FROM "+t.name+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.name, err)
	}
	return total, nil
}

// one runs sql and scans exactly one row into T. No row yields notFound
// when it is non-nil.
func (t table[T]) one(ctx context.Context, notFound error, sql string, args ...any) (T, error) {
	rows, err := GetQuerier(ctx, t.db).Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if notFound != nil && errors.Is(err, pgx.ErrNoRows) {
		return item, notFound
	}
	return item, err
}

func (t table[T]) exists(ctx context.Context, condition string, args ...any) (bool, error) {
	var exists bool
	sql := "SELECT EXISTS (SELECT 1 FROM " + t.name + " WHERE " + condition + ")"
	if err := GetQuerier(ctx, t.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", t.name, err)
	}
	return exists, nil
}

// uniqueViolation returns the violated constraint name for a unique violation error.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
