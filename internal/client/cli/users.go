package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/dmitrijs2005/friendsdir/internal/common"
)

func (a *App) Users(ctx context.Context) error {
	res := a.store.LoadUsers(ctx)
	if !res.OK {
		printResult(a.out, res)
		return nil
	}
	renderUsers(a.out, a.store.Users())
	return nil
}

func (a *App) Total(ctx context.Context) error {
	res := a.store.LoadTotal(ctx)
	if !res.OK {
		printResult(a.out, res)
		return nil
	}
	fmt.Fprintf(a.out, "Total users: %d\n", a.store.Total())
	return nil
}

// AddUser creates a USER account. The password is asked for without echo.
func (a *App) AddUser(ctx context.Context) error {
	var (
		form models.UserForm
		err  error
	)
	if form.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)

	printResult(a.out, a.store.AddUser(ctx, form))
	return nil
}

// knownUser finds id among the signed-in user and the loaded roster.
func (a *App) knownUser(id int64) (models.User, bool) {
	if u := a.store.User(); u != nil && u.ID == id {
		return *u, true
	}
	for _, u := range a.store.Users() {
		if u.ID == id {
			return u.User, true
		}
	}
	return models.User{}, false
}

// EditUser edits name, email and optionally the password of a user. Admins
// may edit anyone; other users only themselves.
func (a *App) EditUser(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}

	current, ok := a.knownUser(id)
	if !ok && a.store.IsAdmin() {
		if res := a.store.LoadUsers(ctx); !res.OK {
			printResult(a.out, res)
			return nil
		}
		current, ok = a.knownUser(id)
	}
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}

	form := current.Form()
	if form.Name, err = GetWithDefault(a.reader, "Name", form.Name, a.out); err != nil {
		return err
	}
	if form.Email, err = GetWithDefault(a.reader, "Email", form.Email, a.out); err != nil {
		return err
	}
	password, err := getPassword("New password (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)

	printResult(a.out, a.store.EditUser(ctx, id, form))
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	printResult(a.out, a.store.DeleteUser(ctx, id))
	return nil
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	printResult(a.out, a.store.ResetPassword(ctx, id))
	return nil
}
