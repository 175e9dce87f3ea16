package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wordbook/internal/models"
)

type WordRepository struct {
	db *sql.DB
}

func NewWordRepository(db *sql.DB) *WordRepository {
	return &WordRepository{db: db}
}

var _ Words = (*WordRepository)(nil)

const (
	selectOwnedWordsSQL = `
		SELECT w.id, w.category_id, w.word, w.created_at, w.updated_at
		FROM words w
		JOIN categories c ON c.id = w.category_id
		WHERE w.category_id = ? AND ` + categoryOwnedBy + `
		ORDER BY w.id ASC`

	// The insert only produces a row when the caller owns the target category.
	insertOwnedWordSQL = `
		INSERT INTO words (category_id, word, created_at, updated_at)
		SELECT c.id, ?, ?, ?
		FROM categories c
		WHERE c.id = ? AND ` + categoryOwnedBy

	deleteOwnedWordSQL = `DELETE FROM words WHERE id = ? AND category_id = ? AND ` + wordOwnedBy
)

// ListOwned returns the words of categoryID if userID owns it. A category
// owned by someone else yields an empty list, not an error.
func (r *WordRepository) ListOwned(ctx context.Context, userID, categoryID int64) ([]models.Word, error) {
	rows, err := r.db.QueryContext(ctx, selectOwnedWordsSQL, categoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("select words of category %d: %w", categoryID, err)
	}
	defer rows.Close()

	out := make([]models.Word, 0, 32)
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.CategoryID, &w.Word, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.CreatedAt = w.CreatedAt.UTC()
		w.UpdatedAt = w.UpdatedAt.UTC()
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return out, nil
}

// Create adds a word to categoryID. ErrNotFound unless userID owns that
// specific category.
func (r *WordRepository) Create(ctx context.Context, userID, categoryID int64, word string) (models.Word, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertOwnedWordSQL, word, now, now, categoryID, userID)
	if err != nil {
		return models.Word{}, fmt.Errorf("insert word into category %d: %w", categoryID, err)
	}
	if err := expectOneRow(res, fmt.Sprintf("insert word into category %d", categoryID)); err != nil {
		return models.Word{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Word{}, fmt.Errorf("get last insert id for word: %w", err)
	}
	return models.Word{ID: id, CategoryID: categoryID, Word: word, CreatedAt: now, UpdatedAt: now}, nil
}

// Delete removes wordID from categoryID. The word must sit in that category
// and the category must belong to userID; otherwise ErrNotFound.
func (r *WordRepository) Delete(ctx context.Context, userID, categoryID, wordID int64) error {
	res, err := r.db.ExecContext(ctx, deleteOwnedWordSQL, wordID, categoryID, userID)
	if err != nil {
		return fmt.Errorf("delete word %d: %w", wordID, err)
	}
	return expectOneRow(res, fmt.Sprintf("delete word %d", wordID))
}
