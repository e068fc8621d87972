package services

import (
	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
)

// Access rules:
//   - the users roster is ADMIN only, except that anyone may read or edit
//     their own account;
//   - friends are visible and editable by their owner and by ADMINs.

func requireAdmin(caller *models.User) error {
	if caller.IsAdmin() {
		return nil
	}
	return common.ErrForbidden
}

func requireSelfOrAdmin(caller *models.User, userID int64) error {
	if caller.IsAdmin() || (caller != nil && caller.ID == userID) {
		return nil
	}
	return common.ErrForbidden
}

// resolveOwner picks the owner a friends request acts on. Zero means the
// caller.
func resolveOwner(caller *models.User, requested int64) (int64, error) {
	if caller == nil {
		return 0, common.ErrUnauthorized
	}
	if requested == 0 {
		return caller.ID, nil
	}
	if err := requireSelfOrAdmin(caller, requested); err != nil {
		return 0, err
	}
	return requested, nil
}

func canTouchFriend(caller *models.User, f *models.Friend) error {
	return requireSelfOrAdmin(caller, f.UserID)
}
