// Package repomanager vends repositories bound to a gorm handle, so the
// services can run the same repositories inside or outside a transaction,
// and owns the schema migration hook.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/friendsdir/internal/dbx"
	"github.com/dmitrijs2005/friendsdir/internal/server/migrations"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/friends"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/users"
	"github.com/dmitrijs2005/friendsdir/internal/server/storage"
	"gorm.io/gorm"
)

// Repos is the set of repositories bound to one handle.
type Repos struct {
	Users   users.Repository
	Friends friends.Repository
}

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Repos() Repos
	// WithTx runs fn with repositories bound to a single transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
	Ping(ctx context.Context) error
}

type GormRepositoryManager struct {
	db *storage.DB
}

func NewGormRepositoryManager(db *storage.DB) *GormRepositoryManager {
	return &GormRepositoryManager{db: db}
}

func bind(db *gorm.DB) Repos {
	return Repos{
		Users:   users.NewGormRepository(db),
		Friends: friends.NewGormRepository(db),
	}
}

func (m *GormRepositoryManager) Repos() Repos {
	return bind(m.db.Gorm)
}

func (m *GormRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	return dbx.WithGormTx(ctx, m.db.Gorm, func(ctx context.Context, tx *gorm.DB) error {
		return fn(ctx, bind(tx))
	})
}

// migrate is a seam for tests.
var migrate = migrations.Up

func (m *GormRepositoryManager) RunMigrations(ctx context.Context) error {
	return migrate(ctx, m.db.SQL, m.db.Dialect)
}

func (m *GormRepositoryManager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}
