package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/repomanager"
)

// AdminSeed describes the administrator account created on first start.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates the seed ADMIN account unless an account with that
// email already exists. An empty email disables seeding.
func EnsureAdmin(ctx context.Context, m repomanager.RepositoryManager, seed AdminSeed, bcryptCost int, log logging.Logger) error {
	if seed.Email == "" {
		return nil
	}
	email := normalizeEmail(seed.Email)
	r := m.Repos()

	existing, err := r.Users.GetByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			log.Warn(ctx, "seed admin email belongs to a non-admin account", "id", existing.ID)
		}
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	u, err := createUser(ctx, r, seed.Name, email, seed.Password, models.RoleAdmin, bcryptCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info(ctx, "admin account created", "id", u.ID, "email", u.Email)
	return nil
}
