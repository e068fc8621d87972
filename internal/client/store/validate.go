package store

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Client-side checks mirror the server rules so forms fail fast. The server
// validates again regardless.
var formMessages = map[string]string{
	"name.required":        "Name field is required",
	"name.min":             "Name should have 2 to 30 characters",
	"name.max":             "Name should have 2 to 30 characters",
	"email.required":       "Email field is required",
	"email.email":          "Email is invalid",
	"password.required":    "Password field is required",
	"password.min":         "Password should be 6 to 30 characters",
	"password.max":         "Password should be 6 to 30 characters",
	"password2.eqfield":    "Passwords should match",
	"gender.oneof":         "Gender should be MALE or FEMALE",
	"age.min":              "Age should be at least 1",
	"hobbies.required":     "Hobbies field is required",
	"description.required": "Description field is required",
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// checkForm returns the field-keyed messages for v, or nil when v passes.
func checkForm(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		msg, ok := formMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out[fe.Field()] = msg
	}
	return out
}
