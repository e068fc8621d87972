package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/friendsdir/internal/client/models"
)

// argID parses args[0] as a record id.
func argID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// ownerArg reads an optional owner id; no argument means the caller.
func ownerArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return argID(args)
}

// Friends loads and prints the friends of the owner given in args, or of
// the signed-in user.
func (a *App) Friends(ctx context.Context, args []string) error {
	owner, err := ownerArg(args)
	if err != nil {
		return err
	}

	res := a.store.LoadFriends(ctx, owner)
	if !res.OK {
		printResult(a.out, res)
		return nil
	}
	list, _ := a.store.Friends()
	renderFriends(a.out, list)
	return nil
}

// readFriendForm prompts for every friend field, offering current values.
func (a *App) readFriendForm(current models.FriendForm) (models.FriendForm, error) {
	var (
		f   models.FriendForm
		err error
	)
	if f.Name, err = GetWithDefault(a.reader, "Name", current.Name, a.out); err != nil {
		return f, err
	}
	if f.Email, err = GetWithDefault(a.reader, "Email", current.Email, a.out); err != nil {
		return f, err
	}
	gender, err := GetWithDefault(a.reader, "Gender (MALE/FEMALE)", string(current.Gender), a.out)
	if err != nil {
		return f, err
	}
	f.Gender = models.Gender(gender)
	if f.Age, err = GetInt(a.reader, "Age", current.Age, a.out); err != nil {
		return f, err
	}
	if f.Hobbies, err = GetWithDefault(a.reader, "Hobbies", current.Hobbies, a.out); err != nil {
		return f, err
	}
	if f.Description, err = GetWithDefault(a.reader, "Description", current.Description, a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) AddFriend(ctx context.Context, args []string) error {
	owner, err := ownerArg(args)
	if err != nil {
		return err
	}
	form, err := a.readFriendForm(models.FriendForm{Gender: models.GenderMale, Age: 1})
	if err != nil {
		return err
	}
	printResult(a.out, a.store.AddFriend(ctx, owner, form))
	return nil
}

// EditFriend edits a friend from the last listing. Unchanged fields are not
// sent.
func (a *App) EditFriend(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	current, ok := a.store.Friend(id)
	if !ok {
		return fmt.Errorf("friend %d is not in the last listing, run 'friends' first", id)
	}
	form, err := a.readFriendForm(current.Form())
	if err != nil {
		return err
	}
	printResult(a.out, a.store.EditFriend(ctx, id, form))
	return nil
}

func (a *App) DeleteFriend(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	printResult(a.out, a.store.DeleteFriend(ctx, id))
	return nil
}
