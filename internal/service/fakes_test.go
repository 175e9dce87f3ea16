package service

import (
	"context"
	"errors"
	"sync"

	"wordbook/internal/models"
	"wordbook/internal/repository"
)

// fakeUsers is an in-memory repository.Users.
type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*models.User
	err    error

	getCalls int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: map[string]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, name string, hash *string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.byName[name]; ok {
		return 0, repository.ErrDuplicate
	}
	f.nextID++
	f.byName[name] = &models.User{ID: f.nextID, Name: name, PasswordHash: hash}
	return f.nextID, nil
}

func (f *fakeUsers) GetByName(_ context.Context, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) SetPasswordHash(_ context.Context, id int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, u := range f.byName {
		if u.ID == id {
			h := hash
			u.PasswordHash = &h
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeSessions is an in-memory repository.Sessions.
type fakeSessions struct {
	mu       sync.Mutex
	bySecret map[string]models.Session
	err      error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{bySecret: map[string]models.Session{}}
}

func (f *fakeSessions) Create(_ context.Context, s models.Session) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.bySecret[s.Secret]; ok {
		return 0, errors.New("UNIQUE constraint failed: sessions.secret")
	}
	f.bySecret[s.Secret] = s
	return int64(len(f.bySecret)), nil
}

func (f *fakeSessions) UserIDBySecret(_ context.Context, secret string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, false, f.err
	}
	s, ok := f.bySecret[secret]
	if !ok {
		return 0, false, nil
	}
	return s.UserID, true, nil
}

// cheapParams keep argon2 fast in tests.
func cheapParams() Argon2Params {
	return Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func newTestCredentials(users repository.Users) *CredentialService {
	return NewCredentialService(users, NewHashPool(2), cheapParams(), nil)
}
