package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wordbook/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL = `INSERT INTO sessions (user_id, secret, created_user_agent, created_at, last_used_at) VALUES (?, ?, ?, ?, ?)`
	selectSessionSQL = `SELECT user_id FROM sessions WHERE secret = ?`
)

// Create persists a freshly minted session. LastUsedAt defaults to CreatedAt.
func (r *SessionRepository) Create(ctx context.Context, s models.Session) (int64, error) {
	lastUsed := s.LastUsedAt
	if lastUsed.IsZero() {
		lastUsed = s.CreatedAt
	}
	res, err := r.db.ExecContext(ctx, insertSessionSQL,
		s.UserID,
		s.Secret,
		s.CreatedUserAgent,
		s.CreatedAt.UTC(),
		lastUsed.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert session for user %d: %w", s.UserID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for session: %w", err)
	}
	return id, nil
}

// UserIDBySecret resolves a session secret. ok is false when no session matches.
func (r *SessionRepository) UserIDBySecret(ctx context.Context, secret string) (int64, bool, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx, selectSessionSQL, secret).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select session: %w", err)
	}
	return userID, true, nil
}
