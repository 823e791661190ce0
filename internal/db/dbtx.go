package db

import (
	"context"
	"database/sql"
)

// DBTX is the execution surface the repositories depend on. Both *sql.DB
// and *sql.Tx satisfy it, so tests can hand a repository either one.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
