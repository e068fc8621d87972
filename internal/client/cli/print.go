package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/dmitrijs2005/friendsdir/internal/client/store"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	okColor    = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	fieldColor = color.New(color.FgYellow)
)

// printResult shows a store Result: the message, then any field errors in
// field order.
func printResult(w io.Writer, res store.Result) {
	if res.OK {
		okColor.Fprintln(w, res.Message)
		return
	}
	failColor.Fprintln(w, res.Message)

	fields := make([]string, 0, len(res.FieldErrors))
	for f := range res.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fieldColor.Fprintf(w, "  %s: %s\n", f, res.FieldErrors[f])
	}
}

func renderFriends(w io.Writer, list []models.Friend) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Name", "Email", "Gender", "Age", "Hobbies", "Description"})
	for _, f := range list {
		t.Append([]string{
			strconv.FormatInt(f.ID, 10), f.Name, f.Email, string(f.Gender),
			strconv.Itoa(f.Age), f.Hobbies, f.Description,
		})
	}
	t.Render()
}

func renderUsers(w io.Writer, list []models.UserSummary) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Name", "Email", "Friends", "Created"})
	for _, u := range list {
		t.Append([]string{
			strconv.FormatInt(u.ID, 10), u.Name, u.Email,
			strconv.FormatInt(u.FriendsCount, 10), u.CreatedAt.Format("2006-01-02"),
		})
	}
	t.Render()
}

func renderUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "ID:     %d\nName:   %s\nEmail:  %s\nRole:   %s\nAvatar: %s\n", u.ID, u.Name, u.Email, u.Role, u.Avatar)
}
