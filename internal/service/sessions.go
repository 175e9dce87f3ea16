package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"wordbook/internal/models"
	"wordbook/internal/repository"
)

// secretBytes is 96 bits of entropy, 16 characters once encoded.
const secretBytes = 12

// SessionService mints and resolves opaque session secrets. Sessions do not
// expire and last_used_at is written once at creation.
type SessionService struct {
	sessions repository.Sessions
	rand     io.Reader
	now      func() time.Time
}

func NewSessionService(sessions repository.Sessions) *SessionService {
	return &SessionService{
		sessions: sessions,
		rand:     rand.Reader,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession stores a new session for userID and returns its secret.
// Collisions are not checked beyond the store's unique constraint.
func (s *SessionService) CreateSession(ctx context.Context, userID int64, userAgent string) (string, error) {
	secret, err := newSecret(s.rand)
	if err != nil {
		return "", err
	}
	now := s.now()
	_, err = s.sessions.Create(ctx, models.Session{
		UserID:           userID,
		Secret:           secret,
		CreatedUserAgent: userAgent,
		CreatedAt:        now,
		LastUsedAt:       now,
	})
	if err != nil {
		return "", fmt.Errorf("create session for user %d: %w", userID, err)
	}
	return secret, nil
}

// ResolveSession maps a secret to its user id. ok is false for unknown secrets.
func (s *SessionService) ResolveSession(ctx context.Context, secret string) (int64, bool, error) {
	userID, ok, err := s.sessions.UserIDBySecret(ctx, secret)
	if err != nil {
		return 0, false, fmt.Errorf("resolve session: %w", err)
	}
	return userID, ok, nil
}

func newSecret(r io.Reader) (string, error) {
	b := make([]byte, secretBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
