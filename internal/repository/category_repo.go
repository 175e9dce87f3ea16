package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wordbook"
	"wordbook/internal/models"
)

type CategoryRepository struct {
	db    *sql.DB
	guard Ownership
}

func NewCategoryRepository(db *sql.DB, guard Ownership) *CategoryRepository {
	return &CategoryRepository{db: db, guard: guard}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	// Category listing is deliberately not owner-scoped: every
	// authenticated user sees every category.
	selectCategorySummariesSQL = `
		SELECT c.id, c.name, COUNT(w.id)
		FROM categories c
		LEFT JOIN words w ON w.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id ASC`

	selectCategorySummarySQL = `
		SELECT c.id, c.name, COUNT(w.id)
		FROM categories c
		LEFT JOIN words w ON w.category_id = c.id
		WHERE c.id = ?
		GROUP BY c.id, c.name`

	selectSampleWordsSQL = `
		SELECT category_id, word FROM (
			SELECT category_id, word,
			       ROW_NUMBER() OVER (PARTITION BY category_id ORDER BY id) AS rn
			FROM words
		) WHERE rn <= ?
		ORDER BY category_id, rn`

	insertCategorySQL = `INSERT INTO categories (user_id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`

	renameCategorySQL = `UPDATE categories SET name = ?, updated_at = ? WHERE id = ? AND ` + categoryRowOwnedBy

	deleteEmptyCategorySQL = `
		DELETE FROM categories
		WHERE id = ? AND ` + categoryRowOwnedBy + `
		  AND NOT EXISTS (SELECT 1 FROM words WHERE words.category_id = categories.id)`
)

// List returns every category with its word count and up to sampleSize
// sample words (in insertion order).
func (r *CategoryRepository) List(ctx context.Context, sampleSize int) ([]wordbook.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategorySummariesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	out := make([]wordbook.Category, 0, 16)
	index := make(map[int64]int)
	for rows.Next() {
		c, err := scanCategorySummary(rows)
		if err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	if sampleSize <= 0 || len(out) == 0 {
		return out, nil
	}
	if err := r.attachSamples(ctx, sampleSize, func(categoryID int64, word string) {
		if i, ok := index[categoryID]; ok {
			out[i].SampleWords = append(out[i].SampleWords, word)
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one category summary; ErrNotFound if it does not exist.
func (r *CategoryRepository) Get(ctx context.Context, categoryID int64, sampleSize int) (*wordbook.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategorySummarySQL, categoryID)
	if err != nil {
		return nil, fmt.Errorf("select category %d: %w", categoryID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("select category %d: %w", categoryID, err)
		}
		return nil, fmt.Errorf("select category %d: %w", categoryID, ErrNotFound)
	}
	c, err := scanCategorySummary(rows)
	if err != nil {
		return nil, err
	}
	_ = rows.Close()

	if sampleSize > 0 {
		if err := r.attachSamples(ctx, sampleSize, func(id int64, word string) {
			if id == categoryID {
				c.SampleWords = append(c.SampleWords, word)
			}
		}); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (r *CategoryRepository) attachSamples(ctx context.Context, sampleSize int, add func(categoryID int64, word string)) error {
	rows, err := r.db.QueryContext(ctx, selectSampleWordsSQL, sampleSize)
	if err != nil {
		return fmt.Errorf("select sample words: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			categoryID int64
			word       string
		)
		if err := rows.Scan(&categoryID, &word); err != nil {
			return fmt.Errorf("scan sample word: %w", err)
		}
		add(categoryID, word)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate sample words: %w", err)
	}
	return nil
}

func scanCategorySummary(rows *sql.Rows) (wordbook.Category, error) {
	var (
		c    wordbook.Category
		name sql.NullString
	)
	if err := rows.Scan(&c.ID, &name, &c.NumWords); err != nil {
		return wordbook.Category{}, fmt.Errorf("scan category: %w", err)
	}
	if name.Valid {
		n := name.String
		c.Name = &n
	}
	c.SampleWords = []string{}
	return c, nil
}

// Create inserts a category owned by userID.
func (r *CategoryRepository) Create(ctx context.Context, userID int64, name *string) (models.Category, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertCategorySQL, userID, name, now, now)
	if err != nil {
		return models.Category{}, fmt.Errorf("insert category for user %d: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Category{}, fmt.Errorf("get last insert id for category: %w", err)
	}
	return models.Category{ID: id, UserID: userID, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

// Rename sets the name of a category owned by userID. ErrNotFound when the
// category is absent or owned by someone else.
func (r *CategoryRepository) Rename(ctx context.Context, userID, categoryID int64, name *string) error {
	res, err := r.db.ExecContext(ctx, renameCategorySQL, name, time.Now().UTC(), categoryID, userID)
	if err != nil {
		return fmt.Errorf("rename category %d: %w", categoryID, err)
	}
	return expectOneRow(res, fmt.Sprintf("rename category %d", categoryID))
}

// Delete removes an empty category owned by userID. ErrNotFound when the
// caller does not own it, ErrCategoryNotEmpty when it still has words.
func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, deleteEmptyCategorySQL, categoryID, userID)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", categoryID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for category %d: %w", categoryID, err)
	}
	if n > 0 {
		return nil
	}

	// Nothing deleted: tell "not yours" apart from "not empty".
	owns, err := r.guard.OwnsCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if owns {
		return fmt.Errorf("delete category %d: %w", categoryID, ErrCategoryNotEmpty)
	}
	return fmt.Errorf("delete category %d: %w", categoryID, ErrNotFound)
}

func expectOneRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
