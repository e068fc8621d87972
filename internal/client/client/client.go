package client

import (
	"context"

	"github.com/dmitrijs2005/friendsdir/internal/client/models"
)

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Client is the transport contract the state store talks to. Every protected
// call takes the bearer token explicitly; implementations keep no session.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Signin(ctx context.Context, email, password string) (string, error)
	Verify(ctx context.Context, token string) (*models.User, error)
	Ping(ctx context.Context) error

	ListUsers(ctx context.Context, token string) ([]models.UserSummary, error)
	TotalUsers(ctx context.Context, token string) (int64, error)
	GetUser(ctx context.Context, token string, id int64) (*models.User, error)
	CreateUser(ctx context.Context, token string, form models.UserForm) (*models.User, error)
	UpdateUser(ctx context.Context, token string, id int64, changes map[string]any) (*models.User, error)
	DeleteUser(ctx context.Context, token string, id int64) (int64, error)
	ResetPassword(ctx context.Context, token string, id int64) (*models.PasswordReset, error)

	ListFriends(ctx context.Context, token string, ownerID int64) ([]models.Friend, error)
	CreateFriend(ctx context.Context, token string, ownerID int64, form models.FriendForm) (*models.Friend, error)
	UpdateFriend(ctx context.Context, token string, id int64, changes map[string]any) (*models.Friend, error)
	DeleteFriend(ctx context.Context, token string, id int64) (int64, error)
}
