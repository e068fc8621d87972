package friends

import (
	"context"

	"github.com/dmitrijs2005/friendsdir/internal/server/models"
)

// Repository persists Friend rows. Missing rows return common.ErrNotFound;
// a reference to a missing owner returns common.ErrNotFound as well.
type Repository interface {
	Create(ctx context.Context, friend *models.Friend) error
	GetByID(ctx context.Context, id int64) (*models.Friend, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Friend, error)
	Update(ctx context.Context, friend *models.Friend) error
	Delete(ctx context.Context, id int64) error
}
