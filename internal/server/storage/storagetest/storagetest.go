// Package storagetest opens migrated in-memory SQLite databases for tests.
package storagetest

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/friendsdir/internal/dbx"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/migrations"
	"github.com/dmitrijs2005/friendsdir/internal/server/storage"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a fresh, fully migrated database private to t.
func NewSQLite(t *testing.T) *storage.DB {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, storage.DriverSQLite, "file::memory:?_foreign_keys=on", logging.Discard(), dbx.ConnectOptions{Attempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(ctx, db.SQL, migrations.DialectSQLite))
	return db
}
