package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the public projection of an account. The password never crosses
// the wire.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserSummary is a roster row.
type UserSummary struct {
	User
	FriendsCount int64 `json:"friends_count"`
}

// PasswordReset is the answer to an admin password reset.
type PasswordReset struct {
	User
	TemporaryPassword string `json:"temporary_password"`
}

// UserForm is the editable part of a User. Empty Password means "unchanged"
// on edit.
type UserForm struct {
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=30"`
}

// Form returns the editable fields of u.
func (u User) Form() UserForm {
	return UserForm{Name: u.Name, Email: u.Email}
}
