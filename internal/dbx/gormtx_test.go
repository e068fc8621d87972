package dbx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   uint
	Text string
}

func setupGorm(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&note{}))
	return db
}

func TestWithGormTx(t *testing.T) {
	db := setupGorm(t)
	ctx := context.Background()

	require.NoError(t, WithGormTx(ctx, db, func(ctx context.Context, tx *gorm.DB) error {
		return tx.Create(&note{Text: "kept"}).Error
	}))

	boom := errors.New("boom")
	err := WithGormTx(ctx, db, func(ctx context.Context, tx *gorm.DB) error {
		require.NoError(t, tx.Create(&note{Text: "dropped"}).Error)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var notes []note
	require.NoError(t, db.Find(&notes).Error)
	require.Len(t, notes, 1)
	require.Equal(t, "kept", notes[0].Text)
}
