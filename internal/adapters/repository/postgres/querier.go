package postgres

import (
	"context"
	"database/sql"
)

// SQLQuerier is the subset of database/sql methods the repositories run
// queries through. Both *sql.DB and *sql.Tx satisfy it, so the unit of
// work can hand repositories either the pool or an open transaction.
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
