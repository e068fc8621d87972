package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Signout(ctx context.Context) error
	Me(ctx context.Context) error
	Friends(ctx context.Context, args []string) error
	AddFriend(ctx context.Context, args []string) error
	EditFriend(ctx context.Context, args []string) error
	DeleteFriend(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	Total(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	ResetPassword(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: signup, signin, help, exit"
	helpUser  = "Available commands: me, friends [owner], addfriend [owner], editfriend <id>, delfriend <id>, edituser <id>, signout, help, exit"
	helpAdmin = helpUser + "\nAdmin commands: users, total, adduser, deluser <id>, resetpw <id>"
)

type access int

const (
	anyone access = iota
	signedIn
	adminOnly
)

// commands maps every command word to the access it needs.
var commands = map[string]access{
	"signup":     anyone,
	"signin":     anyone,
	"me":         signedIn,
	"signout":    signedIn,
	"friends":    signedIn,
	"addfriend":  signedIn,
	"editfriend": signedIn,
	"delfriend":  signedIn,
	"edituser":   signedIn,
	"users":      adminOnly,
	"total":      adminOnly,
	"adduser":    adminOnly,
	"deluser":    adminOnly,
	"resetpw":    adminOnly,
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit". Command
// handlers print their own results; errors they return are input problems
// and are shown as-is.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("fd> %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpGuest)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		need, known := commands[cmd]
		switch {
		case !known:
			printlnFn("Unknown command:", cmd)
			continue
		case need >= signedIn && !a.isLoggedIn():
			printlnFn("Please sign in first")
			continue
		case need == adminOnly && !a.isAdmin():
			printlnFn("Admins only")
			continue
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "signup":
		return a.Signup(ctx)
	case "signin":
		return a.Signin(ctx)
	case "signout":
		return a.Signout(ctx)
	case "me":
		return a.Me(ctx)
	case "friends":
		return a.Friends(ctx, args)
	case "addfriend":
		return a.AddFriend(ctx, args)
	case "editfriend":
		return a.EditFriend(ctx, args)
	case "delfriend":
		return a.DeleteFriend(ctx, args)
	case "users":
		return a.Users(ctx)
	case "total":
		return a.Total(ctx)
	case "adduser":
		return a.AddUser(ctx)
	case "edituser":
		return a.EditUser(ctx, args)
	case "deluser":
		return a.DeleteUser(ctx, args)
	case "resetpw":
		return a.ResetPassword(ctx, args)
	}
	return fmt.Errorf("unhandled command %q", cmd)
}
