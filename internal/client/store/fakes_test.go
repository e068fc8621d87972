package store

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/client/client"
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

type memTokens struct {
	token   string
	loadErr error
}

func (m *memTokens) Load(context.Context) (string, error) { return m.token, m.loadErr }
func (m *memTokens) Save(_ context.Context, t string) error {
	m.token = t
	return nil
}
func (m *memTokens) Clear(context.Context) error {
	m.token = ""
	return nil
}

// fakeAPI is a scripted client.Client. Unset funcs fail the call.
type fakeAPI struct {
	signup      func(client.SignupRequest) (*models.User, error)
	signin      func(email, password string) (string, error)
	verify      func(token string) (*models.User, error)
	listFriends func(token string, owner int64) ([]models.Friend, error)
	create      func(token string, owner int64, f models.FriendForm) (*models.Friend, error)
	updateF     func(token string, id int64, ch map[string]any) (*models.Friend, error)
	deleteF     func(token string, id int64) (int64, error)
	listUsers   func(token string) ([]models.UserSummary, error)
	total       func(token string) (int64, error)
	getUser     func(token string, id int64) (*models.User, error)
	createUser  func(token string, f models.UserForm) (*models.User, error)
	updateU     func(token string, id int64, ch map[string]any) (*models.User, error)
	deleteU     func(token string, id int64) (int64, error)
	reset       func(token string, id int64) (*models.PasswordReset, error)

	calls int
}

var errUnscripted = errors.New("unscripted call")

func (f *fakeAPI) Signup(_ context.Context, r client.SignupRequest) (*models.User, error) {
	f.calls++
	if f.signup == nil {
		return nil, errUnscripted
	}
	return f.signup(r)
}
func (f *fakeAPI) Signin(_ context.Context, e, p string) (string, error) {
	f.calls++
	if f.signin == nil {
		return "", errUnscripted
	}
	return f.signin(e, p)
}
func (f *fakeAPI) Verify(_ context.Context, t string) (*models.User, error) {
	f.calls++
	if f.verify == nil {
		return nil, errUnscripted
	}
	return f.verify(t)
}
func (f *fakeAPI) Ping(context.Context) error { return nil }
func (f *fakeAPI) ListUsers(_ context.Context, t string) ([]models.UserSummary, error) {
	f.calls++
	if f.listUsers == nil {
		return nil, errUnscripted
	}
	return f.listUsers(t)
}
func (f *fakeAPI) TotalUsers(_ context.Context, t string) (int64, error) {
	f.calls++
	if f.total == nil {
		return 0, errUnscripted
	}
	return f.total(t)
}
func (f *fakeAPI) GetUser(_ context.Context, t string, id int64) (*models.User, error) {
	f.calls++
	if f.getUser == nil {
		return nil, errUnscripted
	}
	return f.getUser(t, id)
}
func (f *fakeAPI) CreateUser(_ context.Context, t string, u models.UserForm) (*models.User, error) {
	f.calls++
	if f.createUser == nil {
		return nil, errUnscripted
	}
	return f.createUser(t, u)
}
func (f *fakeAPI) UpdateUser(_ context.Context, t string, id int64, ch map[string]any) (*models.User, error) {
	f.calls++
	if f.updateU == nil {
		return nil, errUnscripted
	}
	return f.updateU(t, id, ch)
}
func (f *fakeAPI) DeleteUser(_ context.Context, t string, id int64) (int64, error) {
	f.calls++
	if f.deleteU == nil {
		return 0, errUnscripted
	}
	return f.deleteU(t, id)
}
func (f *fakeAPI) ResetPassword(_ context.Context, t string, id int64) (*models.PasswordReset, error) {
	f.calls++
	if f.reset == nil {
		return nil, errUnscripted
	}
	return f.reset(t, id)
}
func (f *fakeAPI) ListFriends(_ context.Context, t string, owner int64) ([]models.Friend, error) {
	f.calls++
	if f.listFriends == nil {
		return nil, errUnscripted
	}
	return f.listFriends(t, owner)
}
func (f *fakeAPI) CreateFriend(_ context.Context, t string, owner int64, fr models.FriendForm) (*models.Friend, error) {
	f.calls++
	if f.create == nil {
		return nil, errUnscripted
	}
	return f.create(t, owner, fr)
}
func (f *fakeAPI) UpdateFriend(_ context.Context, t string, id int64, ch map[string]any) (*models.Friend, error) {
	f.calls++
	if f.updateF == nil {
		return nil, errUnscripted
	}
	return f.updateF(t, id, ch)
}
func (f *fakeAPI) DeleteFriend(_ context.Context, t string, id int64) (int64, error) {
	f.calls++
	if f.deleteF == nil {
		return 0, errUnscripted
	}
	return f.deleteF(t, id)
}

// signedToken builds an HS256 token carrying u's claims.
func signedToken(u models.User) string {
	c := tokenClaims{
		ID: u.ID, Email: u.Email, Name: u.Name, Avatar: u.Avatar, Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("k"))
	if err != nil {
		panic(err)
	}
	return s
}
