package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"wordbook"
	"wordbook/internal/repository"
)

const (
	// SampleWords is how many words a category summary previews.
	SampleWords        = 3
	maxCategoryNameLen = 200
)

type CategoryService struct {
	repo repository.Categories
}

func NewCategoryService(repo repository.Categories) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns every category regardless of owner.
func (s *CategoryService) List(ctx context.Context) ([]wordbook.Category, error) {
	return s.repo.List(ctx, SampleWords)
}

func (s *CategoryService) Get(ctx context.Context, categoryID int64) (wordbook.Category, error) {
	c, err := s.repo.Get(ctx, categoryID, SampleWords)
	if err != nil {
		return wordbook.Category{}, mapRepoError(err)
	}
	return *c, nil
}

// Create adds a category owned by the caller. A blank name is stored as NULL.
func (s *CategoryService) Create(ctx context.Context, who Identity, name *string) (wordbook.Category, error) {
	name, err := normalizeCategoryName(name)
	if err != nil {
		return wordbook.Category{}, err
	}
	c, err := s.repo.Create(ctx, who.UserID, name)
	if err != nil {
		return wordbook.Category{}, err
	}
	return wordbook.Category{ID: c.ID, Name: c.Name, SampleWords: []string{}}, nil
}

// Rename changes the name of a category the caller owns.
func (s *CategoryService) Rename(ctx context.Context, who Identity, categoryID int64, name *string) (wordbook.Category, error) {
	name, err := normalizeCategoryName(name)
	if err != nil {
		return wordbook.Category{}, err
	}
	if err := s.repo.Rename(ctx, who.UserID, categoryID, name); err != nil {
		return wordbook.Category{}, mapRepoError(err)
	}
	return s.Get(ctx, categoryID)
}

// Delete removes an empty category the caller owns.
func (s *CategoryService) Delete(ctx context.Context, who Identity, categoryID int64) error {
	return mapRepoError(s.repo.Delete(ctx, who.UserID, categoryID))
}

func normalizeCategoryName(name *string) (*string, error) {
	if name == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > maxCategoryNameLen {
		return nil, fmt.Errorf("%w: category name longer than %d characters", ErrInvalidInput, maxCategoryNameLen)
	}
	return &trimmed, nil
}

// mapRepoError translates repository sentinels into service ones, keeping
// the wrapped context for logs.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w (%v)", ErrNotFound, err)
	case errors.Is(err, repository.ErrCategoryNotEmpty):
		return fmt.Errorf("%w (%v)", ErrCategoryNotEmpty, err)
	default:
		return err
	}
}
