package client

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/dmitrijs2005/friendsdir/internal/common"
)

// ErrUnavailable is returned when the server could not be reached at all.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx answer from the server. Fields carries the
// field-keyed messages of a validation failure; Message carries a generic
// "error" value when the server sent one.
type APIError struct {
	StatusCode int
	Fields     map[string]string
	Message    string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		return fmt.Sprintf("status %d: %s", e.StatusCode, strings.Join(parts, "; "))
	}
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusInternalServerError:
		return common.ErrInternal
	}
	return nil
}
