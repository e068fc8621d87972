// Package friends is the gorm-backed store for Friend rows.
package friends

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"gorm.io/gorm"
)

// updatable lists the columns Update may write; user_id is absent on purpose
// so a friend can never change owner.
var updatable = []string{"name", "email", "gender", "age", "hobbies", "description", "updated_at"}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("owner: %w", common.ErrNotFound)
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

func (r *GormRepository) Create(ctx context.Context, friend *models.Friend) error {
	if err := r.db.WithContext(ctx).Create(friend).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*models.Friend, error) {
	f := &models.Friend{}
	if err := r.db.WithContext(ctx).First(f, id).Error; err != nil {
		return nil, translate(err)
	}
	return f, nil
}

func (r *GormRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Friend, error) {
	out := []models.Friend{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *GormRepository) Update(ctx context.Context, friend *models.Friend) error {
	res := r.db.WithContext(ctx).
		Model(friend).
		Select(updatable).
		Updates(friend)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Friend{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
