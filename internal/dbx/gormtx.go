package dbx

import (
	"context"

	"gorm.io/gorm"
)

// WithGormTx is the gorm counterpart of WithTx. The handle passed to fn is
// already bound to ctx.
func WithGormTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}
