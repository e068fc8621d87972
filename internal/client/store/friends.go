package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/client/diff"
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
)

// LoadFriends fetches the friends of ownerID (0 means the signed-in user).
func (s *Store) LoadFriends(ctx context.Context, ownerID int64) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	list, err := s.api.ListFriends(ctx, token, ownerID)
	if err != nil {
		return s.fail(ctx, "list friends", err)
	}

	s.mu.Lock()
	s.friends = list
	s.friendsOf = ownerID
	if ownerID == 0 && s.user != nil {
		s.friendsOf = s.user.ID
	}
	s.mu.Unlock()
	return success(fmt.Sprintf("%d friend(s)", len(list)))
}

// AddFriend creates a friend for ownerID (0 means the signed-in user).
func (s *Store) AddFriend(ctx context.Context, ownerID int64, form models.FriendForm) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}
	if fields := checkForm(form); fields != nil {
		return fieldFailure(fields)
	}

	f, err := s.api.CreateFriend(ctx, token, ownerID, form)
	if err != nil {
		return s.fail(ctx, "add friend", err)
	}

	s.mu.Lock()
	if s.friendsOf == f.UserID {
		s.friends = append(s.friends, *f)
	}
	s.mu.Unlock()
	return success(fmt.Sprintf("Friend %s added", f.Name))
}

// Friend returns the cached friend with id.
func (s *Store) Friend(id int64) (models.Friend, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.friends {
		if f.ID == id {
			return f, true
		}
	}
	return models.Friend{}, false
}

// EditFriend sends only the fields of form that differ from the cached row.
// The friend must be in the last loaded list.
func (s *Store) EditFriend(ctx context.Context, id int64, form models.FriendForm) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}
	current, found := s.Friend(id)
	if !found {
		return Result{Message: msgNotFound}
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

	f, err := s.api.UpdateFriend(ctx, token, id, changes)
	if err != nil {
		return s.fail(ctx, "edit friend", err)
	}

	s.mu.Lock()
	for i := range s.friends {
		if s.friends[i].ID == id {
			s.friends[i] = *f
		}
	}
	s.mu.Unlock()
	return success(fmt.Sprintf("Friend %s updated", f.Name))
}

func (s *Store) DeleteFriend(ctx context.Context, id int64) Result {
	token, ok := s.session()
	if !ok {
		return Result{Message: msgSignedOut}
	}

	deleted, err := s.api.DeleteFriend(ctx, token, id)
	if err != nil {
		return s.fail(ctx, "delete friend", err)
	}

	s.mu.Lock()
	s.friends = slicesDeleteID(s.friends, deleted, func(f models.Friend) int64 { return f.ID })
	s.mu.Unlock()
	return success(fmt.Sprintf("Friend %d deleted", deleted))
}
