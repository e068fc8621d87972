package models

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Friend struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Gender      Gender    `json:"gender"`
	Age         int       `json:"age"`
	Hobbies     string    `json:"hobbies"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FriendForm is the editable part of a Friend.
type FriendForm struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Gender      Gender `json:"gender" validate:"oneof=MALE FEMALE"`
	Age         int    `json:"age" validate:"min=1"`
	Hobbies     string `json:"hobbies" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Form returns the editable fields of f.
func (f Friend) Form() FriendForm {
	return FriendForm{
		Name:        f.Name,
		Email:       f.Email,
		Gender:      f.Gender,
		Age:         f.Age,
		Hobbies:     f.Hobbies,
		Description: f.Description,
	}
}
