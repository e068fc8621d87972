// Package store is the client state store. It holds the session, the
// signed-in user and the last fetched users and friends, mediates every API
// call and reports outcomes as Result values for the UI.
//
// The server is the source of truth for identity: a token only counts as
// signed in once /verify has returned the user row.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/friendsdir/internal/client/client"
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
)

// TokenStorage persists the bearer token between runs.
type TokenStorage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SignupForm is the sign-up form.
type SignupForm struct {
	Name      string `json:"name" validate:"required,min=2,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=30"`
	Password2 string `json:"password2" validate:"eqfield=Password"`
}

type Store struct {
	api    client.Client
	tokens TokenStorage
	log    logging.Logger

	mu        sync.RWMutex
	token     string
	user      *models.User
	verified  bool
	users     []models.UserSummary
	total     int64
	friends   []models.Friend
	friendsOf int64
}

func New(api client.Client, tokens TokenStorage, log logging.Logger) *Store {
	return &Store{api: api, tokens: tokens, log: log.With("module", "store")}
}

// User returns a copy of the signed-in user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether the server has confirmed the session.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verified
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verified && s.user.IsAdmin()
}

func (s *Store) Users() []models.UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Friends returns the last loaded friends list and whose list it is.
func (s *Store) Friends() ([]models.Friend, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.friends), s.friendsOf
}

func (s *Store) session() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != "" && s.verified
}

// fail converts err to a Result. A 401 on a protected call ends the session.
func (s *Store) fail(ctx context.Context, op string, err error) Result {
	if errors.Is(err, common.ErrUnauthorized) {
		s.dropSession(ctx)
	}
	s.log.Debug(ctx, "action failed", "op", op, "error", err)
	return outcome(err)
}

func (s *Store) dropSession(ctx context.Context) {
	s.mu.Lock()
	s.token, s.user, s.verified = "", nil, false
	s.users, s.total, s.friends, s.friendsOf = nil, 0, nil, 0
	s.mu.Unlock()

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "could not clear saved token", "error", err)
	}
}

// Restore resumes a saved session, if any, by asking the server who the
// token belongs to. A rejected token is discarded.
func (s *Store) Restore(ctx context.Context) Result {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return Result{Message: fmt.Sprintf("could not read saved session: %v", err)}
	}
	if token == "" {
		return Result{Message: msgSignedOut}
	}
	return s.verify(ctx, token)
}

func (s *Store) verify(ctx context.Context, token string) Result {
	if cached, ok := userFromToken(token); ok {
		s.mu.Lock()
		s.token, s.user, s.verified = token, cached, false
		s.mu.Unlock()
	}

	user, err := s.api.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			return outcome(err)
		}
		s.dropSession(ctx)
		return Result{Message: msgExpired}
	}

	s.mu.Lock()
	s.token, s.user, s.verified = token, user, true
	s.mu.Unlock()
	return success(fmt.Sprintf("Signed in as %s", user.Email))
}

func (s *Store) Signup(ctx context.Context, form SignupForm) Result {
	if fields := checkForm(form); fields != nil {
		return fieldFailure(fields)
	}

	u, err := s.api.Signup(ctx, client.SignupRequest(form))
	if err != nil {
		return s.fail(ctx, "signup", err)
	}
	return success(fmt.Sprintf("Account %s created, you can sign in now", u.Email))
}

// Signin exchanges credentials for a token, saves it and verifies it.
func (s *Store) Signin(ctx context.Context, email, password string) Result {
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "Email field is required"
	}
	if password == "" {
		fields["password"] = "Password field is required"
	}
	if len(fields) > 0 {
		return fieldFailure(fields)
	}

	token, err := s.api.Signin(ctx, email, password)
	if err != nil {
		return s.fail(ctx, "signin", err)
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		s.log.Warn(ctx, "could not save token", "error", err)
	}
	return s.verify(ctx, token)
}

// Signout forgets the session locally. The token stays valid on the server
// until it expires.
func (s *Store) Signout(ctx context.Context) Result {
	s.dropSession(ctx)
	return success("Signed out")
}
