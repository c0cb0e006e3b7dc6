// Package category provides the category listing use case. Categories are
// seeded at startup and immutable from the API's point of view, so the
// surface is intentionally small.
package category

import (
	"context"
	"fmt"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// Service provides category use cases.
type Service struct {
	Repo repository.CategoryRepository
}

// List retrieves all categories in seed order.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
