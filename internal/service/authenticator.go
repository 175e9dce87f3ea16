package service

import (
	"context"
	"fmt"

	"wordbook/internal/repository"
)

type passwordVerifier interface {
	VerifyPassword(ctx context.Context, storedHash, plaintext string) bool
}

type sessionIssuer interface {
	CreateSession(ctx context.Context, userID int64, userAgent string) (string, error)
	ResolveSession(ctx context.Context, secret string) (int64, bool, error)
}

// AuthService implements Authorization on top of the credential and
// session services.
type AuthService struct {
	users       repository.Users
	credentials passwordVerifier
	sessions    sessionIssuer
}

func NewAuthService(users repository.Users, credentials passwordVerifier, sessions sessionIssuer) *AuthService {
	return &AuthService{users: users, credentials: credentials, sessions: sessions}
}

// AuthenticateByPassword returns the user id when username/plaintext match.
// Unknown users and users without a password return ok=false without any
// hashing; the timing difference to a wrong password is not hidden.
func (s *AuthService) AuthenticateByPassword(ctx context.Context, username, plaintext string) (int64, bool, error) {
	u, err := s.users.GetByName(ctx, username)
	if err != nil {
		return 0, false, fmt.Errorf("look up user: %w", err)
	}
	if !u.HasPassword() {
		return 0, false, nil
	}
	if !s.credentials.VerifyPassword(ctx, *u.PasswordHash, plaintext) {
		return 0, false, nil
	}
	return u.ID, true, nil
}

func (s *AuthService) CreateSession(ctx context.Context, userID int64, userAgent string) (string, error) {
	return s.sessions.CreateSession(ctx, userID, userAgent)
}

func (s *AuthService) ResolveSession(ctx context.Context, secret string) (int64, bool, error) {
	return s.sessions.ResolveSession(ctx, secret)
}

// SignIn authenticates and, on success, mints a session. ok is false on bad
// credentials; err is reserved for store or hashing failures.
func (s *AuthService) SignIn(ctx context.Context, username, plaintext, userAgent string) (userID int64, secret string, ok bool, err error) {
	userID, ok, err = s.AuthenticateByPassword(ctx, username, plaintext)
	if err != nil || !ok {
		return 0, "", false, err
	}
	secret, err = s.sessions.CreateSession(ctx, userID, userAgent)
	if err != nil {
		return 0, "", false, err
	}
	return userID, secret, true, nil
}

// Identity is what request handlers learn about the caller. It carries no
// session secret.
type Identity struct {
	UserID int64
}

// ResolveIdentity turns a raw cookie value into an Identity. An empty value
// yields ErrNotAuthenticated; an unknown one ErrInvalidSession.
func (s *AuthService) ResolveIdentity(ctx context.Context, secret string) (Identity, error) {
	if secret == "" {
		return Identity{}, ErrNotAuthenticated
	}
	userID, ok, err := s.sessions.ResolveSession(ctx, secret)
	if err != nil {
		return Identity{}, err
	}
	if !ok {
		return Identity{}, ErrInvalidSession
	}
	return Identity{UserID: userID}, nil
}
