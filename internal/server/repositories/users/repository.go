package users

import (
	"context"

	"github.com/dmitrijs2005/friendsdir/internal/server/models"
)

// Repository persists User rows. Lookups of missing rows return
// common.ErrNotFound; email collisions return common.ErrConflict.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.UserSummary, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}
