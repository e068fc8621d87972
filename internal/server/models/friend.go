package models

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Friend is a contact record owned by exactly one User. UserID is set at
// creation and never changes.
type Friend struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Gender      Gender    `json:"gender"`
	Age         int       `json:"age"`
	Hobbies     string    `json:"hobbies"`
	Description string    `json:"description"`
	UserID      int64     `gorm:"index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
