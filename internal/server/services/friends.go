package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/repomanager"
)

type FriendService struct {
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewFriendService(m repomanager.RepositoryManager, log logging.Logger) *FriendService {
	return &FriendService{repomanager: m, log: log.With("module", "friends")}
}

// List returns the friends of ownerID, or of the caller when ownerID is 0.
func (s *FriendService) List(ctx context.Context, caller *models.User, ownerID int64) ([]models.Friend, error) {
	owner, err := resolveOwner(caller, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Repos().Friends.ListByOwner(ctx, owner)
}

// Create adds a friend. USER callers always create for themselves; ADMIN
// callers must name the owner.
func (s *FriendService) Create(ctx context.Context, caller *models.User, in FriendInput) (*models.Friend, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in, friendMessages); err != nil {
		return nil, err
	}
	if caller.IsAdmin() && in.UserID == 0 {
		return nil, fieldError("user_id", "User field is required")
	}

	owner, err := resolveOwner(caller, in.UserID)
	if err != nil {
		return nil, err
	}

	f := &models.Friend{
		Name:        in.Name,
		Email:       in.Email,
		Gender:      in.Gender,
		Age:         in.Age,
		Hobbies:     in.Hobbies,
		Description: in.Description,
		UserID:      owner,
	}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repos) error {
		if _, err := r.Users.GetByID(ctx, owner); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return fieldError("user_id", msgUserNotFound)
			}
			return err
		}
		return r.Friends.Create(ctx, f)
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "friend created", "id", f.ID, "owner", owner)
	return f, nil
}

func (s *FriendService) Update(ctx context.Context, caller *models.User, id int64, p FriendPatch) (*models.Friend, error) {
	if p.Email != nil {
		e := normalizeEmail(*p.Email)
		p.Email = &e
	}
	if err := check(p, friendMessages); err != nil {
		return nil, err
	}

	var out *models.Friend
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repos) error {
		f, err := r.Friends.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := canTouchFriend(caller, f); err != nil {
			return err
		}

		applyFriendPatch(f, p)
		if err := r.Friends.Update(ctx, f); err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FriendService) Delete(ctx context.Context, caller *models.User, id int64) error {
	return s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repos) error {
		f, err := r.Friends.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := canTouchFriend(caller, f); err != nil {
			return err
		}
		return r.Friends.Delete(ctx, id)
	})
}

func applyFriendPatch(f *models.Friend, p FriendPatch) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Gender != nil {
		f.Gender = *p.Gender
	}
	if p.Age != nil {
		f.Age = *p.Age
	}
	if p.Hobbies != nil {
		f.Hobbies = *p.Hobbies
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
}
