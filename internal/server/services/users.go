package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/auth"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/repomanager"
)

// PasswordReset is the account after a reset plus the credential it now
// accepts.
type PasswordReset struct {
	models.User
	TemporaryPassword string `json:"temporary_password"`
}

type UserService struct {
	repomanager   repomanager.RepositoryManager
	bcryptCost    int
	resetPassword string
	log           logging.Logger
}

// NewUserService builds the roster service. A non-empty resetPassword is
// the fixed value every reset uses; empty means random per reset.
func NewUserService(m repomanager.RepositoryManager, bcryptCost int, resetPassword string, log logging.Logger) *UserService {
	return &UserService{
		repomanager:   m,
		bcryptCost:    bcryptCost,
		resetPassword: resetPassword,
		log:           log.With("module", "users"),
	}
}

func (s *UserService) List(ctx context.Context, caller *models.User) ([]models.UserSummary, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repomanager.Repos().Users.ListByRole(ctx, models.RoleUser)
}

func (s *UserService) Total(ctx context.Context, caller *models.User) (int64, error) {
	if err := requireAdmin(caller); err != nil {
		return 0, err
	}
	return s.repomanager.Repos().Users.CountByRole(ctx, models.RoleUser)
}

func (s *UserService) Get(ctx context.Context, caller *models.User, id int64) (*models.User, error) {
	if err := requireSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	return s.repomanager.Repos().Users.GetByID(ctx, id)
}

// Create adds a USER account on an admin's behalf.
func (s *UserService) Create(ctx context.Context, caller *models.User, in CreateUserInput) (*models.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}

	user, err := createUser(ctx, s.repomanager.Repos(), in.Name, in.Email, in.Password, models.RoleUser, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user created", "id", user.ID, "by", caller.ID)
	return user, nil
}

// Update applies the non-nil fields of in. Role and avatar never change.
func (s *UserService) Update(ctx context.Context, caller *models.User, id int64, in UpdateUserInput) (*models.User, error) {
	if err := requireSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := check(in); err != nil {
		return nil, err
	}

	var hash string
	if in.Password != nil {
		h, err := auth.HashPassword(*in.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	var user *models.User
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repos) error {
		u, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Email != nil && *in.Email != u.Email {
			other, err := r.Users.GetByEmail(ctx, *in.Email)
			if err == nil && other.ID != u.ID {
				return fieldError("email", msgEmailExists)
			}
			if err != nil && !errors.Is(err, common.ErrNotFound) {
				return err
			}
			u.Email = *in.Email
		}
		if in.Name != nil {
			u.Name = *in.Name
		}
		if hash != "" {
			u.Password = hash
		}

		if err := r.Users.Update(ctx, u); err != nil {
			if errors.Is(err, common.ErrConflict) {
				return fieldError("email", msgEmailExists)
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and, by cascade, its friends. Admins cannot delete
// their own account.
func (s *UserService) Delete(ctx context.Context, caller *models.User, id int64) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if caller.ID == id {
		return fieldError("id", msgOwnAccount)
	}
	if err := s.repomanager.Repos().Users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id, "by", caller.ID)
	return nil
}

// ResetPassword replaces the user's password with a temporary one and
// returns it once.
func (s *UserService) ResetPassword(ctx context.Context, caller *models.User, id int64) (*PasswordReset, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	temp := s.resetPassword
	if temp == "" {
		p, err := common.MakeRandHexString(12)
		if err != nil {
			return nil, fmt.Errorf("generate password: %w", err)
		}
		temp = p
	}

	hash, err := auth.HashPassword(temp, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	var out *PasswordReset
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repos) error {
		u, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		u.Password = hash
		if err := r.Users.Update(ctx, u); err != nil {
			return err
		}
		out = &PasswordReset{User: *u, TemporaryPassword: temp}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "password reset", "id", id, "by", caller.ID)
	return out, nil
}
