package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}

func TestForms(t *testing.T) {
	u := User{ID: 1, Name: "Ann", Email: "ann@x.io", Role: RoleUser}
	if diff := cmp.Diff(UserForm{Name: "Ann", Email: "ann@x.io"}, u.Form()); diff != "" {
		t.Errorf("UserForm mismatch (-want +got):\n%s", diff)
	}

	f := Friend{ID: 2, Name: "Bob", Email: "bob@x.io", Gender: GenderMale, Age: 30, Hobbies: "chess", Description: "d", UserID: 1}
	want := FriendForm{Name: "Bob", Email: "bob@x.io", Gender: GenderMale, Age: 30, Hobbies: "chess", Description: "d"}
	if diff := cmp.Diff(want, f.Form()); diff != "" {
		t.Errorf("FriendForm mismatch (-want +got):\n%s", diff)
	}
}

func TestUserSummaryDecodesFlat(t *testing.T) {
	var s UserSummary
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Ann","role":"USER","friends_count":2}`), &s))
	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, int64(2), s.FriendsCount)
}
