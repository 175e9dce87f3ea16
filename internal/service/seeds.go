package service

import (
	"context"
	"fmt"

	"wordbook/internal/repository"
)

const seedPassword = "123"

var (
	seedUsers      = []string{"user", "user1"}
	seedCategories = []string{"орнитология", "медицина", "кулинария"}
	seedWords      = []string{"снегирь", "спазм", "расстегай", "дефлегматор", "сипуха", "пентаграмма"}
)

// Seeder fills an empty database with demo data.
type Seeder struct {
	users *UserService
	repos *repository.Repository
}

func NewSeeder(users *UserService, repos *repository.Repository) *Seeder {
	return &Seeder{users: users, repos: repos}
}

// Seed creates the demo users, categories and words. It does nothing and
// returns false when the first demo user already exists.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	existing, err := s.repos.Users.GetByName(ctx, seedUsers[0])
	if err != nil {
		return false, fmt.Errorf("check seed state: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	ids := make([]int64, 0, len(seedUsers))
	for _, name := range seedUsers {
		id, err := s.users.AddUser(ctx, name, seedPassword)
		if err != nil {
			return false, fmt.Errorf("seed user %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	owner := ids[0]

	catIDs := make([]int64, 0, len(seedCategories))
	for _, name := range seedCategories {
		name := name
		c, err := s.repos.Categories.Create(ctx, owner, &name)
		if err != nil {
			return false, fmt.Errorf("seed category %q: %w", name, err)
		}
		catIDs = append(catIDs, c.ID)
	}

	// The third category stays empty so it can be deleted from the UI.
	for i, word := range seedWords {
		if _, err := s.repos.Words.Create(ctx, owner, catIDs[i%2], word); err != nil {
			return false, fmt.Errorf("seed word %q: %w", word, err)
		}
	}
	return true, nil
}
