package repository

import (
	"context"
	"database/sql"
	"errors"

	"wordbook"
	"wordbook/internal/models"
)

// Sentinel errors returned by the SQLite repositories.
var (
	ErrNotFound         = errors.New("record not found")
	ErrCategoryNotEmpty = errors.New("category still has words")
	ErrDuplicate        = errors.New("record already exists")
)

type Users interface {
	Create(ctx context.Context, name string, passwordHash *string) (int64, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	SetPasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) (int64, error)
	UserIDBySecret(ctx context.Context, secret string) (int64, bool, error)
}

// Ownership answers "does this user own that resource" for the cases that
// cannot fold the predicate into the data statement itself.
type Ownership interface {
	OwnsCategory(ctx context.Context, userID, categoryID int64) (bool, error)
}

type Categories interface {
	List(ctx context.Context, sampleSize int) ([]wordbook.Category, error)
	Get(ctx context.Context, categoryID int64, sampleSize int) (*wordbook.Category, error)
	Create(ctx context.Context, userID int64, name *string) (models.Category, error)
	Rename(ctx context.Context, userID, categoryID int64, name *string) error
	Delete(ctx context.Context, userID, categoryID int64) error
}

type Words interface {
	ListOwned(ctx context.Context, userID, categoryID int64) ([]models.Word, error)
	Create(ctx context.Context, userID, categoryID int64, word string) (models.Word, error)
	Delete(ctx context.Context, userID, categoryID, wordID int64) error
}

type Repository struct {
	Users      Users
	Sessions   Sessions
	Ownership  Ownership
	Categories Categories
	Words      Words
}

func NewRepository(db *sql.DB) *Repository {
	guard := NewOwnershipGuard(db)
	return &Repository{
		Users:      NewUserRepository(db),
		Sessions:   NewSessionRepository(db),
		Ownership:  guard,
		Categories: NewCategoryRepository(db, guard),
		Words:      NewWordRepository(db),
	}
}
