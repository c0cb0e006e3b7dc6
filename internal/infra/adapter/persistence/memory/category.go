package memory

import (
	"context"
	"strings"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// CategoryRepo implements repository.CategoryRepository on a shared Store.
type CategoryRepo struct{ s *Store }

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// NewCategoryRepo returns a category repository backed by the store.
func NewCategoryRepo(s *Store) *CategoryRepo { return &CategoryRepo{s: s} }

// List returns all categories in seed/insertion order.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, id := range sortedIDs(r.s.categories) {
		out = append(out, copyCategory(r.s.categories[id]))
	}
	return out, nil
}

// GetBySlug looks a category up by its unique slug.
// Linear scan: the collection is a handful of seeded rows.
// Returns (nil, nil) when no category has the slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.Slug == slug {
			return copyCategory(c), nil
		}
	}
	return nil, nil
}

// Create stores a new category under the next id.
// Returns entity.ErrDuplicate when the slug is taken.
func (r *CategoryRepo) Create(ctx context.Context, in repository.CreateCategoryInput) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.Slug == in.Slug {
			return nil, entity.ErrDuplicate
		}
	}
	cat := r.s.insertCategory(in)
	return copyCategory(cat), nil
}

// insertCategory assigns the next id and stores the category.
// Callers must hold the write lock.
func (s *Store) insertCategory(in repository.CreateCategoryInput) *entity.Category {
	s.categoryID++
	cat := &entity.Category{
		ID:    s.categoryID,
		Name:  in.Name,
		Slug:  in.Slug,
		Color: in.Color,
		Icon:  in.Icon,
	}
	s.categories[cat.ID] = cat
	return cat
}

// resolveCategorySlug maps a listing's category selector to an optional
// category id filter. Empty and the "top" sentinel mean "all articles";
// so does a slug that resolves to nothing (the shipped fallback behavior,
// see repository.ArticleFilter). Callers must hold at least the read lock.
func (s *Store) resolveCategorySlug(slug string) (int64, bool) {
	if slug == "" || strings.EqualFold(slug, "top") {
		return 0, false
	}
	for _, c := range s.categories {
		if c.Slug == slug {
			return c.ID, true
		}
	}
	return 0, false
}
