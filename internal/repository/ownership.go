package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Ownership predicates. Every owner-scoped statement in this package embeds
// one of these, with the caller's user id bound to the trailing placeholder,
// so a mismatch surfaces as "no rows" rather than as a separate check that
// could race with the data statement.
const (
	// categoryOwnedBy expects the categories table aliased as c.
	categoryOwnedBy = `c.user_id = ?`
	// categoryRowOwnedBy is used where categories is not aliased.
	categoryRowOwnedBy = `user_id = ?`
	// wordOwnedBy scopes a words row through its parent category.
	wordOwnedBy = `category_id IN (SELECT id FROM categories WHERE user_id = ?)`
)

const selectOwnsCategorySQL = `SELECT EXISTS (SELECT 1 FROM categories c WHERE c.id = ? AND ` + categoryOwnedBy + `)`

type OwnershipGuard struct {
	db *sql.DB
}

func NewOwnershipGuard(db *sql.DB) *OwnershipGuard {
	return &OwnershipGuard{db: db}
}

var _ Ownership = (*OwnershipGuard)(nil)

// OwnsCategory reports whether userID owns categoryID. An absent category
// and a category owned by someone else are indistinguishable.
func (g *OwnershipGuard) OwnsCategory(ctx context.Context, userID, categoryID int64) (bool, error) {
	var owns bool
	if err := g.db.QueryRowContext(ctx, selectOwnsCategorySQL, categoryID, userID).Scan(&owns); err != nil {
		return false, fmt.Errorf("check owner of category %d: %w", categoryID, err)
	}
	return owns, nil
}
