package store

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/client/client"
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/dmitrijs2005/friendsdir/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/auth"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/friendsdir/internal/server/rest"
	"github.com/dmitrijs2005/friendsdir/internal/server/services"
	"github.com/dmitrijs2005/friendsdir/internal/server/storage/storagetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const legacyReset = "1234567890"

// liveStack starts a real API server on an in-memory database and returns a
// function that builds stores talking to it, each with its own local file.
func liveStack(t *testing.T) func() (*Store, *metadata.TokenStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	log := logging.Discard()

	rm := repomanager.NewGormRepositoryManager(storagetest.NewSQLite(t))
	require.NoError(t, services.EnsureAdmin(ctx, rm, services.AdminSeed{
		Name: "admin", Email: "admin@gmail.com", Password: "admin1",
	}, bcrypt.MinCost, log))

	tokens := auth.NewTokens("e2e-secret", time.Hour)
	srv := rest.NewServer(":0", time.Second, log,
		services.NewAuthService(rm, tokens, bcrypt.MinCost, log),
		services.NewUserService(rm, bcrypt.MinCost, legacyReset, log),
		services.NewFriendService(rm, log),
		rm,
	)
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	return func() (*Store, *metadata.TokenStore) {
		db, err := client.InitDatabase(ctx, ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		ts := metadata.NewTokenStore(metadata.NewSQLiteRepository(db))
		return New(client.NewHTTPClient(hs.URL, 5*time.Second), ts, log), ts
	}
}

func TestEndToEnd_SignupSigninAddFriend(t *testing.T) {
	newStore := liveStack(t)
	s, ts := newStore()
	ctx := context.Background()

	res := s.Signup(ctx, SignupForm{Name: "Ann", Email: "ann@x.com", Password: "password1", Password2: "password1"})
	require.True(t, res.OK, res.Message)

	res = s.Signup(ctx, SignupForm{Name: "Ann", Email: "ann@x.com", Password: "password1", Password2: "password1"})
	assert.Equal(t, map[string]string{"email": "Email already exist"}, res.FieldErrors)

	res = s.Signin(ctx, "ann@x.com", "password1")
	require.True(t, res.OK, res.Message)
	me := s.User()
	require.NotNil(t, me)
	assert.Contains(t, me.Avatar, "gravatar.com/avatar/")

	saved, err := ts.Load(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, saved)

	bob := models.FriendForm{Name: "Bob", Email: "bob@x.com", Gender: models.GenderMale, Age: 30, Hobbies: "chess", Description: "friend"}
	res = s.AddFriend(ctx, me.ID, bob)
	require.True(t, res.OK, res.Message)

	require.True(t, s.LoadFriends(ctx, me.ID).OK)
	list, owner := s.Friends()
	assert.Equal(t, me.ID, owner)
	require.Len(t, list, 1)
	assert.Equal(t, bob, list[0].Form())
	assert.Equal(t, me.ID, list[0].UserID)

	// a fresh process resumes the saved session
	s2, ts2 := newStore()
	require.NoError(t, ts2.Save(ctx, saved))
	require.True(t, s2.Restore(ctx).OK)
	assert.Equal(t, me.ID, s2.User().ID)

	res = s.LoadUsers(ctx)
	assert.Equal(t, msgForbidden, res.Message)
}

func TestEndToEnd_AdminResetPassword(t *testing.T) {
	newStore := liveStack(t)
	ctx := context.Background()

	user, _ := newStore()
	require.True(t, user.Signup(ctx, SignupForm{Name: "Carl", Email: "carl@x.com", Password: "oldpass1", Password2: "oldpass1"}).OK)

	adm, _ := newStore()
	require.True(t, adm.Signin(ctx, "admin@gmail.com", "admin1").OK)
	require.True(t, adm.IsAdmin())
	require.True(t, adm.LoadUsers(ctx).OK)
	users := adm.Users()
	require.Len(t, users, 1)

	res := adm.ResetPassword(ctx, users[0].ID)
	require.True(t, res.OK, res.Message)
	assert.Contains(t, res.Message, legacyReset)

	assert.True(t, user.Signin(ctx, "carl@x.com", legacyReset).OK)
	res = user.Signin(ctx, "carl@x.com", "oldpass1")
	assert.Equal(t, map[string]string{"password": "Password incorrect"}, res.FieldErrors)
}

func TestEndToEnd_DeletedUserLosesSession(t *testing.T) {
	newStore := liveStack(t)
	ctx := context.Background()

	user, ts := newStore()
	require.True(t, user.Signup(ctx, SignupForm{Name: "Dee", Email: "dee@x.com", Password: "password1", Password2: "password1"}).OK)
	require.True(t, user.Signin(ctx, "dee@x.com", "password1").OK)
	id := user.User().ID

	adm, _ := newStore()
	require.True(t, adm.Signin(ctx, "admin@gmail.com", "admin1").OK)
	require.True(t, adm.DeleteUser(ctx, id).OK)
	assert.Equal(t, msgNotFound, adm.DeleteUser(ctx, id).Message)

	res := user.LoadFriends(ctx, 0)
	assert.Equal(t, msgExpired, res.Message)
	saved, err := ts.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}
