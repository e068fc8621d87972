// Package users is the gorm-backed store for User rows.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"gorm.io/gorm"
)

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
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return common.ErrConflict
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

func (r *GormRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	if err := r.db.WithContext(ctx).First(user, id).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// ListByRole returns users of the given role ordered by id, each with the
// number of friends it owns.
func (r *GormRepository) ListByRole(ctx context.Context, role models.Role) ([]models.UserSummary, error) {
	counts := r.db.Model(&models.Friend{}).
		Select("COUNT(*)").
		Where("friends.user_id = users.id")

	var out []models.UserSummary
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*, (?) AS friends_count", counts).
		Where("users.role = ?", role).
		Order("users.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	if out == nil {
		out = []models.UserSummary{}
	}
	return out, nil
}

func (r *GormRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Update writes name, email, password and avatar. Role is never written.
func (r *GormRepository) Update(ctx context.Context, user *models.User) error {
	res := r.db.WithContext(ctx).
		Model(user).
		Select("name", "email", "password", "avatar", "updated_at").
		Updates(user)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
