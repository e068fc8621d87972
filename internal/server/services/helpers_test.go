package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/auth"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/friendsdir/internal/server/storage/storagetest"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testCost = bcrypt.MinCost

type env struct {
	rm      *repomanager.GormRepositoryManager
	tokens  *auth.Tokens
	auth    *AuthService
	users   *UserService
	friends *FriendService
	admin   *models.User
}

func newEnv(t *testing.T) *env {
	t.Helper()
	rm := repomanager.NewGormRepositoryManager(storagetest.NewSQLite(t))
	log := logging.Discard()
	tokens := auth.NewTokens("test-secret", time.Hour)

	require.NoError(t, EnsureAdmin(context.Background(), rm, AdminSeed{
		Name: "admin", Email: "admin@gmail.com", Password: "admin",
	}, testCost, log))
	admin, err := rm.Repos().Users.GetByEmail(context.Background(), "admin@gmail.com")
	require.NoError(t, err)

	return &env{
		rm:      rm,
		tokens:  tokens,
		auth:    NewAuthService(rm, tokens, testCost, log),
		users:   NewUserService(rm, testCost, "", log),
		friends: NewFriendService(rm, log),
		admin:   admin,
	}
}

func (e *env) signup(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := e.auth.Signup(context.Background(), SignupInput{
		Name: name, Email: email, Password: "password1", Password2: "password1",
	})
	require.NoError(t, err)
	return u
}

func requireFields(t *testing.T, err error, want map[string]string) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
	require.Equal(t, want, verr.Fields)
}

func ptr[T any](v T) *T { return &v }

// failingManager returns repositories that fail every call.
type failingManager struct{ err error }

func (m failingManager) RunMigrations(context.Context) error { return m.err }
func (m failingManager) Ping(context.Context) error          { return m.err }
func (m failingManager) Repos() repomanager.Repos {
	return repomanager.Repos{Users: failingUsers{m.err}, Friends: failingFriends{m.err}}
}
func (m failingManager) WithTx(ctx context.Context, fn func(context.Context, repomanager.Repos) error) error {
	return fn(ctx, m.Repos())
}

type failingUsers struct{ err error }

func (f failingUsers) Create(context.Context, *models.User) error { return f.err }
func (f failingUsers) GetByID(context.Context, int64) (*models.User, error) {
	return nil, f.err
}
func (f failingUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f failingUsers) ListByRole(context.Context, models.Role) ([]models.UserSummary, error) {
	return nil, f.err
}
func (f failingUsers) CountByRole(context.Context, models.Role) (int64, error) { return 0, f.err }
func (f failingUsers) Update(context.Context, *models.User) error             { return f.err }
func (f failingUsers) Delete(context.Context, int64) error                    { return f.err }

type failingFriends struct{ err error }

func (f failingFriends) Create(context.Context, *models.Friend) error { return f.err }
func (f failingFriends) GetByID(context.Context, int64) (*models.Friend, error) {
	return nil, f.err
}
func (f failingFriends) ListByOwner(context.Context, int64) ([]models.Friend, error) {
	return nil, f.err
}
func (f failingFriends) Update(context.Context, *models.Friend) error { return f.err }
func (f failingFriends) Delete(context.Context, int64) error          { return f.err }
