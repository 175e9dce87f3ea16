package service

import (
	"context"

	"wordbook"
	"wordbook/internal/logger"
	"wordbook/internal/repository"
)

// Authorization covers login and per-request identity.
type Authorization interface {
	AuthenticateByPassword(ctx context.Context, username, plaintext string) (int64, bool, error)
	SignIn(ctx context.Context, username, plaintext, userAgent string) (userID int64, secret string, ok bool, err error)
	CreateSession(ctx context.Context, userID int64, userAgent string) (string, error)
	ResolveSession(ctx context.Context, secret string) (int64, bool, error)
	ResolveIdentity(ctx context.Context, secret string) (Identity, error)
}

// Credentials hashes, stores and checks passwords.
type Credentials interface {
	HashPassword(ctx context.Context, plaintext string) (string, error)
	SetPassword(ctx context.Context, userID int64, plaintext string) error
	VerifyPassword(ctx context.Context, storedHash, plaintext string) bool
}

// Users backs the administrative user commands.
type Users interface {
	AddUser(ctx context.Context, name, password string) (int64, error)
	SetPasswordByName(ctx context.Context, name, password string) error
}

type Categories interface {
	List(ctx context.Context) ([]wordbook.Category, error)
	Get(ctx context.Context, categoryID int64) (wordbook.Category, error)
	Create(ctx context.Context, who Identity, name *string) (wordbook.Category, error)
	Rename(ctx context.Context, who Identity, categoryID int64, name *string) (wordbook.Category, error)
	Delete(ctx context.Context, who Identity, categoryID int64) error
}

type Words interface {
	List(ctx context.Context, who Identity, categoryID int64) ([]wordbook.Word, error)
	Create(ctx context.Context, who Identity, categoryID int64, word string) (wordbook.Word, error)
	Delete(ctx context.Context, who Identity, categoryID, wordID int64) error
}

// Seeds installs demo data.
type Seeds interface {
	Seed(ctx context.Context) (bool, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Credentials Credentials
	Users       Users
	Categories  Categories
	Words       Words
	Seeds       Seeds
}

// Options tune the password hashing path.
type Options struct {
	HashWorkers int
	Argon2      Argon2Params
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options, log *logger.Logger) *Service {
	credentials := NewCredentialService(repos.Users, NewHashPool(opts.HashWorkers), opts.Argon2, log)
	sessions := NewSessionService(repos.Sessions)
	users := NewUserService(repos.Users, credentials)

	return &Service{
		Authorization: NewAuthService(repos.Users, credentials, sessions),
		Credentials:   credentials,
		Users:         users,
		Categories:    NewCategoryService(repos.Categories),
		Words:         NewWordService(repos.Words),
		Seeds:         NewSeeder(users, repos),
	}
}
