// Package storage opens the server database: a *sql.DB for goose and a
// *gorm.DB sharing the same pool for the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/dbx"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sql driver names registered by pgx/stdlib and mattn/go-sqlite3
var sqlDrivers = map[string]string{
	DriverPostgres: "pgx",
	DriverSQLite:   "sqlite3",
}

type DB struct {
	SQL     *sql.DB
	Gorm    *gorm.DB
	Dialect string
}

// Open connects to the database, retrying the initial ping, and wraps the
// pool with gorm. Driver errors are translated into gorm sentinels such as
// gorm.ErrDuplicatedKey.
func Open(ctx context.Context, driver, dsn string, log logging.Logger, opts dbx.ConnectOptions) (*DB, error) {
	sqlDriver, ok := sqlDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	sqlDB, err := dbx.Open(ctx, sqlDriver, dsn, opts)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case DriverSQLite:
		// one connection keeps in-memory databases alive and serializes writers
		sqlDB.SetMaxOpenConns(1)
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		dialector = sqlite.Dialector{Conn: sqlDB}
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	return &DB{SQL: sqlDB, Gorm: gdb, Dialect: driver}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.SQL.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.SQL.Close()
}
