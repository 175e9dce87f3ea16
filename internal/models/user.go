package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash *string   `json:"-"` // nil means password login is disabled
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasPassword reports whether the user can log in with a password.
func (u *User) HasPassword() bool {
	return u != nil && u.PasswordHash != nil
}
