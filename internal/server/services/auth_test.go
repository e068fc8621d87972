package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/auth"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_Success(t *testing.T) {
	e := newEnv(t)

	u, err := e.auth.Signup(context.Background(), SignupInput{
		Name: "Ann", Email: " Ann@X.com", Password: "password1", Password2: "password1",
	})
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "ann@x.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Equal(t, auth.AvatarURL("ann@x.com"), u.Avatar)
	assert.NotEqual(t, "password1", u.Password)
	assert.True(t, auth.VerifyPassword("password1", u.Password))
}

func TestSignup_Validation(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		in   SignupInput
		want map[string]string
	}{
		{
			name: "everything missing",
			in:   SignupInput{},
			want: map[string]string{
				"name":      "Name field is required",
				"email":     "Email field is required",
				"password":  "Password field is required",
				"password2": "Confirmed Password field is required",
			},
		},
		{
			name: "bad lengths and mismatch",
			in:   SignupInput{Name: "A", Email: "not-an-email", Password: "12345", Password2: "54321"},
			want: map[string]string{
				"name":      "Name should have 2 to 30 characters",
				"email":     "Email is invalid",
				"password":  "Password should be 6 to 30 characters",
				"password2": "Passwords should match",
			},
		},
		{
			name: "too long",
			in: SignupInput{
				Name: "abcdefghijklmnopqrstuvwxyzabcde", Email: "a@b.co",
				Password: "password1", Password2: "password1",
			},
			want: map[string]string{"name": "Name should have 2 to 30 characters"},
		},
		{
			name: "blank name",
			in:   SignupInput{Name: "   ", Email: "a@b.co", Password: "password1", Password2: "password1"},
			want: map[string]string{"name": "Name field is required"},
		},
		{
			name: "multibyte password over bcrypt limit",
			in: SignupInput{
				Name: "Ann", Email: "a@b.co",
				Password: strings.Repeat("😀", 30), Password2: strings.Repeat("😀", 30),
			},
			want: map[string]string{"password": "Password should be at most 72 bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.auth.Signup(context.Background(), tt.in)
			requireFields(t, err, tt.want)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "Ann", "ann@x.com")

	_, err := e.auth.Signup(context.Background(), SignupInput{
		Name: "Other", Email: "ANN@x.com", Password: "password2", Password2: "password2",
	})
	requireFields(t, err, map[string]string{"email": "Email already exist"})

	total, err := e.users.Total(context.Background(), e.admin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total, "no new row")
}

func TestSignin(t *testing.T) {
	e := newEnv(t)
	ann := e.signup(t, "Ann", "ann@x.com")
	ctx := context.Background()

	token, err := e.auth.Signin(ctx, SigninInput{Email: "ann@x.com", Password: "password1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := e.tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, claims.UserID)
	assert.Equal(t, ann.Email, claims.Email)
	assert.Equal(t, ann.Name, claims.Name)
	assert.Equal(t, ann.Avatar, claims.Avatar)
	assert.Equal(t, models.RoleUser, claims.Role)

	token, err = e.auth.Signin(ctx, SigninInput{Email: "ann@x.com", Password: "wrong-password"})
	requireFields(t, err, map[string]string{"password": "Password incorrect"})
	assert.Empty(t, token)

	_, err = e.auth.Signin(ctx, SigninInput{Email: "ghost@x.com", Password: "password1"})
	requireFields(t, err, map[string]string{"email": "User not found"})

	_, err = e.auth.Signin(ctx, SigninInput{Email: "nope"})
	requireFields(t, err, map[string]string{"email": "Email invalid", "password": "Password field is required"})
}

func TestSignin_StoreFailure(t *testing.T) {
	boom := errors.New("db down")
	s := NewAuthService(failingManager{boom}, auth.NewTokens("k", time.Hour), testCost, logging.Discard())

	_, err := s.Signin(context.Background(), SigninInput{Email: "ann@x.com", Password: "x"})
	require.ErrorIs(t, err, boom)
	var verr *ValidationError
	require.False(t, errors.As(err, &verr))
}

func TestVerify(t *testing.T) {
	e := newEnv(t)
	ann := e.signup(t, "Ann", "ann@x.com")
	ctx := context.Background()

	token, err := e.auth.Signin(ctx, SigninInput{Email: "ann@x.com", Password: "password1"})
	require.NoError(t, err)

	got, err := e.auth.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, got.ID)

	_, err = e.auth.Verify(ctx, "")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = e.auth.Verify(ctx, "garbage")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	require.NoError(t, e.users.Delete(ctx, e.admin, ann.ID))
	_, err = e.auth.Verify(ctx, token)
	require.ErrorIs(t, err, common.ErrUnauthorized, "user no longer exists")
}

func TestVerify_Expired(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "Ann", "ann@x.com")

	issued := time.Now()
	e.tokens.Now = func() time.Time { return issued }
	token, err := e.auth.Signin(context.Background(), SigninInput{Email: "ann@x.com", Password: "password1"})
	require.NoError(t, err)

	e.tokens.Now = func() time.Time { return issued.Add(time.Hour + time.Minute) }
	_, err = e.auth.Verify(context.Background(), token)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestEnsureAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	assert.Equal(t, models.RoleAdmin, e.admin.Role)
	assert.True(t, auth.VerifyPassword("admin", e.admin.Password))

	// idempotent
	require.NoError(t, EnsureAdmin(ctx, e.rm, AdminSeed{Name: "x", Email: "admin@gmail.com", Password: "y"}, testCost, logging.Discard()))
	// disabled
	require.NoError(t, EnsureAdmin(ctx, e.rm, AdminSeed{}, testCost, logging.Discard()))

	list, err := e.users.List(ctx, e.admin)
	require.NoError(t, err)
	assert.Empty(t, list, "admins are not listed")
}
