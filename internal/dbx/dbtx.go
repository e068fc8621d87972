// Package dbx holds the small database helpers shared by the server and the
// client: a DBTX interface satisfied by *sql.DB and *sql.Tx, a gorm
// transaction runner, and a retrying opener.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the raw-SQL repositories use.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
