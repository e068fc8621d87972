package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/friendsdir/internal/client/diff"
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
)

func slicesDeleteID[T any](s []T, id int64, key func(T) int64) []T {
	return slices.DeleteFunc(s, func(v T) bool { return key(v) == id })
}

func (s *Store) LoadUsers(ctx context.Context) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	list, err := s.api.ListUsers(ctx, token)
	if err != nil {
		return s.fail(ctx, "list users", err)
	}

	s.mu.Lock()
	s.users = list
	s.mu.Unlock()
	return success(fmt.Sprintf("%d user(s)", len(list)))
}

func (s *Store) LoadTotal(ctx context.Context) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	n, err := s.api.TotalUsers(ctx, token)
	if err != nil {
		return s.fail(ctx, "total users", err)
	}

	s.mu.Lock()
	s.total = n
	s.mu.Unlock()
	return success(fmt.Sprintf("%d user(s) registered", n))
}

func (s *Store) AddUser(ctx context.Context, form models.UserForm) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}
	fields := checkForm(form)
	if form.Password == "" {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["password"] = "Password field is required"
	}
	if fields != nil {
		return fieldFailure(fields)
	}

	u, err := s.api.CreateUser(ctx, token, form)
	if err != nil {
		return s.fail(ctx, "add user", err)
	}

	s.mu.Lock()
	s.users = append(s.users, models.UserSummary{User: *u})
	s.total++
	s.mu.Unlock()
	return success(fmt.Sprintf("User %s created", u.Email))
}

// cachedUser finds id among the loaded users or the signed-in user.
func (s *Store) cachedUser(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user != nil && s.user.ID == id {
		return *s.user, true
	}
	for _, u := range s.users {
		if u.ID == id {
			return u.User, true
		}
	}
	return models.User{}, false
}

// EditUser sends the changed fields of form. An empty password leaves the
// password alone. Unknown ids are fetched first.
func (s *Store) EditUser(ctx context.Context, id int64, form models.UserForm) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	current, found := s.cachedUser(id)
	if !found {
		u, err := s.api.GetUser(ctx, token, id)
		if err != nil {
			return s.fail(ctx, "get user", err)
		}
		current = *u
	}
	if fields := checkForm(form); fields != nil {
		return fieldFailure(fields)
	}

	changes, err := diff.Changes(current.Form(), form)
	if err != nil {
		return Result{Message: err.Error()}
	}
	if len(changes) == 0 {
		return success(msgNoChanges)
	}

	u, err := s.api.UpdateUser(ctx, token, id, changes)
	if err != nil {
		return s.fail(ctx, "edit user", err)
	}

	s.mu.Lock()
	if s.user != nil && s.user.ID == u.ID {
		s.user = u
	}
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i].User = *u
		}
	}
	s.mu.Unlock()
	return success(fmt.Sprintf("User %s updated", u.Email))
}

func (s *Store) DeleteUser(ctx context.Context, id int64) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	deleted, err := s.api.DeleteUser(ctx, token, id)
	if err != nil {
		return s.fail(ctx, "delete user", err)
	}

	s.mu.Lock()
	before := len(s.users)
	s.users = slicesDeleteID(s.users, deleted, func(u models.UserSummary) int64 { return u.ID })
	if len(s.users) < before && s.total > 0 {
		s.total--
	}
	s.mu.Unlock()
	return success(fmt.Sprintf("User %d deleted", deleted))
}

// ResetPassword asks the server for a new temporary password and reports it
// in the message.
func (s *Store) ResetPassword(ctx context.Context, id int64) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	r, err := s.api.ResetPassword(ctx, token, id)
	if err != nil {
		return s.fail(ctx, "reset password", err)
	}
	return success(fmt.Sprintf("Password of %s reset, temporary password: %s", r.Email, r.TemporaryPassword))
}
