package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"wordbook"
	"wordbook/internal/repository"
)

const maxWordLen = 200

type WordService struct {
	repo repository.Words
}

func NewWordService(repo repository.Words) *WordService {
	return &WordService{repo: repo}
}

// List returns the words of a category the caller owns. A foreign or
// missing category gives an empty list.
func (s *WordService) List(ctx context.Context, who Identity, categoryID int64) ([]wordbook.Word, error) {
	words, err := s.repo.ListOwned(ctx, who.UserID, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]wordbook.Word, 0, len(words))
	for _, w := range words {
		out = append(out, wordbook.Word{ID: w.ID, CategoryID: w.CategoryID, Word: w.Word})
	}
	return out, nil
}

// Create adds a word to a category the caller owns; ErrNotFound otherwise.
func (s *WordService) Create(ctx context.Context, who Identity, categoryID int64, word string) (wordbook.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return wordbook.Word{}, fmt.Errorf("%w: word is empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(word) > maxWordLen {
		return wordbook.Word{}, fmt.Errorf("%w: word longer than %d characters", ErrInvalidInput, maxWordLen)
	}
	w, err := s.repo.Create(ctx, who.UserID, categoryID, word)
	if err != nil {
		return wordbook.Word{}, mapRepoError(err)
	}
	return wordbook.Word{ID: w.ID, CategoryID: w.CategoryID, Word: w.Word}, nil
}

// Delete removes a word from a category the caller owns; ErrNotFound when
// the word, the category, or the ownership does not line up.
func (s *WordService) Delete(ctx context.Context, who Identity, categoryID, wordID int64) error {
	return mapRepoError(s.repo.Delete(ctx, who.UserID, categoryID, wordID))
}
