// Package services implements the friendsdir use cases on top of the
// repositories: sign-up and sign-in, the users roster and friend lists,
// with role and ownership checks applied to every call.
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

type AuthService struct {
	repomanager repomanager.RepositoryManager
	tokens      *auth.Tokens
	bcryptCost  int
	log         logging.Logger
}

func NewAuthService(m repomanager.RepositoryManager, tokens *auth.Tokens, bcryptCost int, log logging.Logger) *AuthService {
	return &AuthService{repomanager: m, tokens: tokens, bcryptCost: bcryptCost, log: log.With("module", "auth")}
}

// Signup registers a USER account.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}

	return createUser(ctx, s.repomanager.Repos(), in.Name, in.Email, in.Password, models.RoleUser, s.bcryptCost)
}

// Signin checks credentials and returns a signed bearer token.
func (s *AuthService) Signin(ctx context.Context, in SigninInput) (string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in, signinMessages); err != nil {
		return "", err
	}

	user, err := s.repomanager.Repos().Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fieldError("email", msgUserNotFound)
		}
		return "", fmt.Errorf("signin lookup: %w", err)
	}

	if !auth.VerifyPassword(in.Password, user.Password) {
		s.log.Info(ctx, "signin rejected", "user_id", user.ID)
		return "", fieldError("password", msgPasswordMismatch)
	}

	token, err := s.tokens.Issue(auth.ClaimsFor(user))
	if err != nil {
		return "", err
	}
	return token, nil
}

// Verify resolves a bearer token to the current user row. Every failure,
// including a valid token for a deleted user, is common.ErrUnauthorized.
func (s *AuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	user, err := s.repomanager.Repos().Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d gone", common.ErrUnauthorized, claims.UserID)
		}
		return nil, err
	}
	return user, nil
}

// createUser is shared by sign-up, admin create and the bootstrap seed.
func createUser(ctx context.Context, r repomanager.Repos, name, email, password string, role models.Role, cost int) (*models.User, error) {
	_, err := r.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fieldError("email", msgEmailExists)
	case !errors.Is(err, common.ErrNotFound):
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Avatar:   auth.AvatarURL(email),
		Password: hash,
		Role:     role,
	}
	if err := r.Users.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, fieldError("email", msgEmailExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
