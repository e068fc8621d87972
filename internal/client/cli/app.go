package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/friendsdir/internal/client/client"
	"github.com/dmitrijs2005/friendsdir/internal/client/config"
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/dmitrijs2005/friendsdir/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/friendsdir/internal/client/store"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
)

// StateStore is the part of *store.Store the commands use.
type StateStore interface {
	Restore(ctx context.Context) store.Result
	Signup(ctx context.Context, form store.SignupForm) store.Result
	Signin(ctx context.Context, email, password string) store.Result
	Signout(ctx context.Context) store.Result
	User() *models.User
	IsAuthenticated() bool
	IsAdmin() bool

	LoadFriends(ctx context.Context, ownerID int64) store.Result
	Friends() ([]models.Friend, int64)
	Friend(id int64) (models.Friend, bool)
	AddFriend(ctx context.Context, ownerID int64, form models.FriendForm) store.Result
	EditFriend(ctx context.Context, id int64, form models.FriendForm) store.Result
	DeleteFriend(ctx context.Context, id int64) store.Result

	LoadUsers(ctx context.Context) store.Result
	Users() []models.UserSummary
	LoadTotal(ctx context.Context) store.Result
	Total() int64
	AddUser(ctx context.Context, form models.UserForm) store.Result
	EditUser(ctx context.Context, id int64, form models.UserForm) store.Result
	DeleteUser(ctx context.Context, id int64) store.Result
	ResetPassword(ctx context.Context, id int64) store.Result
}

type App struct {
	config *config.Config
	store  StateStore
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and builds the store on top of an HTTP
// client for c.ServerURL.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	logger := logging.NewJSON(os.Stderr, c.LogLevel)
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	tokens := metadata.NewTokenStore(metadata.NewSQLiteRepository(db))

	return &App{
		config: c,
		store:  store.New(api, tokens, logger),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.store.IsAdmin()
}

func (a *App) getStatus() string {
	u := a.store.User()
	if u == nil || !a.store.IsAuthenticated() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

// Run resumes a saved session if there is one and serves the REPL until
// the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	fmt.Fprintf(a.out, "Welcome to friendsdir CLI, server %s (type 'help' for commands)\n", a.config.ServerURL)
	if res := a.store.Restore(ctx); res.OK {
		printResult(a.out, res)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
