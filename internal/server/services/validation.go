package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/friendsdir/internal/server/auth"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type SignupInput struct {
	Name      string `json:"name" validate:"notblank,min=2,max=30"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=30,bcryptlen"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserInput struct {
	Name     string `json:"name" validate:"notblank,min=2,max=30"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=30,bcryptlen"`
}

// UpdateUserInput is a partial update; nil fields are left alone.
// "required" passes for any non-nil pointer, so present-but-empty values
// are caught with notblank.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitnil,notblank,min=2,max=30"`
	Email    *string `json:"email" validate:"omitnil,notblank,email,max=255"`
	Password *string `json:"password" validate:"omitnil,notblank,min=6,max=30,bcryptlen"`
}

type FriendInput struct {
	Name        string        `json:"name" validate:"notblank,max=255"`
	Email       string        `json:"email" validate:"required,email,max=255"`
	Gender      models.Gender `json:"gender" validate:"required,gender"`
	Age         int           `json:"age" validate:"required,min=1"`
	Hobbies     string        `json:"hobbies" validate:"notblank"`
	Description string        `json:"description" validate:"notblank"`
	UserID      int64         `json:"user_id"`
}

// FriendPatch is a partial update. The owner cannot be patched.
type FriendPatch struct {
	Name        *string        `json:"name" validate:"omitnil,notblank,max=255"`
	Email       *string        `json:"email" validate:"omitnil,notblank,email,max=255"`
	Gender      *models.Gender `json:"gender" validate:"omitnil,notblank,gender"`
	Age         *int           `json:"age" validate:"omitnil,notblank,min=1"`
	Hobbies     *string        `json:"hobbies" validate:"omitnil,notblank"`
	Description *string        `json:"description" validate:"omitnil,notblank"`
}

// messages maps "<json field>.<tag>" to the text shown to the user.
var messages = map[string]string{
	"name.required":        "Name field is required",
	"name.min":             "Name should have 2 to 30 characters",
	"name.max":             "Name should have 2 to 30 characters",
	"email.max":            "Email should be at most 255 characters",
	"email.required":       "Email field is required",
	"email.email":          "Email is invalid",
	"password.required":    "Password field is required",
	"password.min":         "Password should be 6 to 30 characters",
	"password.max":         "Password should be 6 to 30 characters",
	"password.bcryptlen":   "Password should be at most 72 bytes",
	"password2.required":   "Confirmed Password field is required",
	"password2.eqfield":    "Passwords should match",
	"gender.required":      "Gender field is required",
	"gender.gender":        "Gender should be MALE or FEMALE",
	"age.required":         "Age should be at least 1",
	"age.min":              "Age should be at least 1",
	"hobbies.required":     "Hobbies field is required",
	"description.required": "Description field is required",
}

// friend names are not bound by the account name limits
var friendMessages = map[string]string{
	"name.max": "Name should be at most 255 characters",
}

// sign-in historically words the email error differently
var signinMessages = map[string]string{
	"email.email": "Email invalid",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("bcryptlen", bcryptLen); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("gender", validGender); err != nil {
		panic(err)
	}
	return v
}

// bcryptLen rejects passwords bcrypt cannot hash. min/max count runes,
// bcrypt counts bytes.
func bcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= auth.MaxPasswordBytes
}

func validGender(fl validator.FieldLevel) bool {
	return models.Gender(fl.Field().String()).Valid()
}

// check validates in and converts failures into a *ValidationError. The
// first entry of overrides that matches wins over the default messages.
func check(in any, overrides ...map[string]string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = message(field, fe.Tag(), overrides)
	}
	return out
}

func message(field, tag string, overrides []map[string]string) string {
	if tag == "notblank" {
		tag = "required"
	}
	key := field + "." + tag
	for _, o := range overrides {
		if m, ok := o[key]; ok {
			return m
		}
	}
	if m, ok := messages[key]; ok {
		return m
	}
	return strings.ToUpper(field[:1]) + field[1:] + " is invalid"
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
