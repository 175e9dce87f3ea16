package models

import "time"

// Category is a word list owned by exactly one user.
type Category struct {
	ID        int64
	UserID    int64
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Word belongs to one category; its owner is the category's owner.
type Word struct {
	ID         int64
	CategoryID int64
	Word       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
