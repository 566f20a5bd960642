package model

import "time"

// User represents an account that can sign in to the API.
type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Email               string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	EncryptedPassword   string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ResetPasswordToken  *string    `json:"-" gorm:"size:255"`
	ResetPasswordSentAt *time.Time `json:"-"`
	RememberCreatedAt   *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// PublicUser is the projection of a user returned by the API.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Public returns the fields of u that are safe to expose.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}
