package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wordbook/internal/repository"
)

const maxUsernameLen = 64

type passwordHasher interface {
	HashPassword(ctx context.Context, plaintext string) (string, error)
	SetPassword(ctx context.Context, userID int64, plaintext string) error
}

// UserService backs the administrative user commands.
type UserService struct {
	users       repository.Users
	credentials passwordHasher
}

func NewUserService(users repository.Users, credentials passwordHasher) *UserService {
	return &UserService{users: users, credentials: credentials}
}

// AddUser creates a user with a hashed password and returns its id.
func (s *UserService) AddUser(ctx context.Context, name, password string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxUsernameLen {
		return 0, fmt.Errorf("%w: username must be 1-%d characters", ErrInvalidInput, maxUsernameLen)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}

	hash, err := s.credentials.HashPassword(ctx, password)
	if err != nil {
		return 0, err
	}
	id, err := s.users.Create(ctx, name, &hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, fmt.Errorf("add user %q: %w", name, ErrDuplicateUser)
		}
		return 0, fmt.Errorf("add user %q: %w", name, err)
	}
	return id, nil
}

// SetPasswordByName rotates the password of the named user.
func (s *UserService) SetPasswordByName(ctx context.Context, name, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}
	u, err := s.users.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("look up user %q: %w", name, err)
	}
	if u == nil {
		return fmt.Errorf("user %q: %w", name, ErrNoSuchUser)
	}
	return s.credentials.SetPassword(ctx, u.ID, password)
}
