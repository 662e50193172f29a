package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-inventory/internal/model"
)

// DBTX is the subset of *pgxpool.Pool the repositories query through.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// filterQuery accumulates equality predicates and their positional args.
// Column names always come from code, never from request input.
type filterQuery struct {
	clauses []string
	args    []any
}

func (q *filterQuery) eq(column string, value any) {
	q.args = append(q.args, value)
	q.clauses = append(q.clauses, fmt.Sprintf("%s = $%d", column, len(q.args)))
}

func eqIfSet[T any](q *filterQuery, column string, value *T) {
	if value != nil {
		q.eq(column, *value)
	}
}

func (q *filterQuery) where() string {
	if len(q.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.clauses, " AND ")
}

func (q *filterQuery) paged(page model.Page) string {
	q.args = append(q.args, page.Limit, page.Skip)
	return fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(q.args)-1, len(q.args))
}

func exists(ctx context.Context, db DBTX, table string, id int64) (bool, error) {
	var found bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return false, translateError("check "+table+" exists", err)
	}
	return found, nil
}

func deleteByID(ctx context.Context, db DBTX, table string, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return translateError("delete from "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete from %s: %w", table, model.ErrNotFound)
	}
	return nil
}

func countRows(ctx context.Context, db DBTX, table string) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, translateError("count "+table, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func collect[T any](rows pgx.Rows, op string, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return out, nil
}
