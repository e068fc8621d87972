package services

import (
	"sort"
	"strings"
)

// ValidationError carries field-keyed, human-readable messages. The REST
// layer renders Fields as the 400 response body.
type ValidationError struct {
	Fields map[string]string
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

const (
	msgEmailExists      = "Email already exist"
	msgUserNotFound     = "User not found"
	msgPasswordMismatch = "Password incorrect"
	msgOwnAccount       = "Cannot delete own account"
)
