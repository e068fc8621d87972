package cli

import (
	"context"

	"github.com/dmitrijs2005/friendsdir/internal/client/store"
	"github.com/dmitrijs2005/friendsdir/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup asks for name, email and the password twice, then registers.
// Signing up does not sign in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	password2, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password2)

	printResult(a.out, a.store.Signup(ctx, store.SignupForm{
		Name:      name,
		Email:     email,
		Password:  string(password),
		Password2: string(password2),
	}))
	return nil
}

// Signin prompts for credentials and starts a session. The password bytes
// are wiped before returning.
func (a *App) Signin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	printResult(a.out, a.store.Signin(ctx, email, string(password)))
	return nil
}

func (a *App) Signout(ctx context.Context) error {
	printResult(a.out, a.store.Signout(ctx))
	return nil
}

// Me prints the signed-in user as last confirmed by the server.
func (a *App) Me(ctx context.Context) error {
	u := a.store.User()
	if u == nil {
		printResult(a.out, store.Result{Message: "Not signed in"})
		return nil
	}
	renderUser(a.out, u)
	return nil
}
