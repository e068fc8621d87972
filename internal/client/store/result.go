package store

import (
	"errors"

	"github.com/dmitrijs2005/friendsdir/internal/client/client"
	"github.com/dmitrijs2005/friendsdir/internal/common"
)

// Result is the outcome of a store action, shaped for the UI: a success
// flag, a message for a notification, and field errors for forms.
type Result struct {
	OK          bool
	Message     string
	FieldErrors map[string]string
}

const (
	msgFixFields   = "Please fix the highlighted fields"
	msgExpired     = "Session expired, please sign in again"
	msgSignedOut   = "Please sign in first"
	msgForbidden   = "You are not allowed to do that"
	msgNotFound    = "Not found"
	msgUnavailable = "Server unavailable, try again later"
	msgInternal    = "Something went wrong on the server"
	msgNoChanges   = "Nothing to update"
)

func success(msg string) Result {
	return Result{OK: true, Message: msg}
}

func fieldFailure(fields map[string]string) Result {
	return Result{Message: msgFixFields, FieldErrors: fields}
}

// outcome turns a transport error into a Result. It does not touch session
// state; see (*Store).fail for that.
func outcome(err error) Result {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && len(apiErr.Fields) > 0:
		return fieldFailure(apiErr.Fields)
	case errors.Is(err, common.ErrUnauthorized):
		return Result{Message: msgExpired}
	case errors.Is(err, common.ErrForbidden):
		return Result{Message: msgForbidden}
	case errors.Is(err, common.ErrNotFound):
		return Result{Message: msgNotFound}
	case errors.Is(err, client.ErrUnavailable):
		return Result{Message: msgUnavailable}
	case errors.Is(err, common.ErrInternal):
		return Result{Message: msgInternal}
	default:
		return Result{Message: err.Error()}
	}
}
