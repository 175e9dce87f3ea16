package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"wordbook/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL       = `INSERT INTO users (name, password, created_at, updated_at) VALUES (?, ?, ?, ?)`
	selectUserByNameSQL = `SELECT id, name, password, created_at, updated_at FROM users WHERE name = ?`
	updatePasswordSQL   = `UPDATE users SET password = ?, updated_at = ? WHERE id = ?`
)

// Create inserts a new user and returns its ID. A nil passwordHash creates
// an account with password login disabled.
func (r *UserRepository) Create(ctx context.Context, name string, passwordHash *string) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertUserSQL, name, passwordHash, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", name, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", name, err)
	}
	return lastID, nil
}

// GetByName fetches a user by login name. Returns (nil, nil) if not found.
func (r *UserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	var (
		u    models.User
		hash sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectUserByNameSQL, name).
		Scan(&u.ID, &u.Name, &hash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", name, err)
	}
	if hash.Valid {
		h := hash.String
		u.PasswordHash = &h
	}
	return &u, nil
}

// SetPasswordHash replaces the stored hash. ErrNotFound if no such user.
func (r *UserRepository) SetPasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, updatePasswordSQL, passwordHash, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("update password for user %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %d: %w", userID, err)
	}
	if n == 0 {
		return fmt.Errorf("update password for user %d: %w", userID, ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
