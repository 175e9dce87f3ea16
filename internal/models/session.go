package models

import "time"

// Session is an issued login. Secret is the only value the client holds.
type Session struct {
	ID               int64
	UserID           int64
	Secret           string
	CreatedUserAgent string
	CreatedAt        time.Time
	LastUsedAt       time.Time
}
