// Package repository defines the persistence interfaces consumed by the
// use case layer. The only implementation shipped is the in-memory store
// under internal/infra/adapter/persistence/memory; the interfaces keep the
// contract stable should a durable backing store ever replace it.
package repository

import (
	"context"
	"time"

	"astrobuzz/internal/domain/entity"
)

// ArticleWithDetails is an article joined with its resolved category and
// actor entities. It is a read-only projection built at query time and is
// never persisted. Actors whose ids no longer resolve are silently dropped;
// an unresolvable category is a programming error (entity.ErrDanglingCategory).
type ArticleWithDetails struct {
	Article  *entity.Article
	Category *entity.Category
	Actors   []*entity.Actor
}

// ArticleFilter narrows a paginated article listing.
//
// CategorySlug semantics: empty or "top" means all articles. A slug that
// resolves to a category filters to it. A slug that resolves to nothing
// also yields the unfiltered set; that fallback mirrors the behavior the
// product shipped with and is pinned by tests.
type ArticleFilter struct {
	CategorySlug string
	Limit        int // max items returned; callers default it to 20
	Offset       int // items skipped; beyond-range offsets yield an empty page
}

// CreateArticleInput carries the caller-supplied fields for a new article.
// Zero PublishedAt means "now"; counters start at zero.
type CreateArticleInput struct {
	Title         string
	Summary       string
	Content       string
	CategoryID    int64
	PublishedAt   time.Time
	AstroAnalysis string
	AstroGlyphs   []entity.AstroGlyph
	Hashtags      []string
	ActorIDs      []int64
	IsCelebrity   bool
}

// ArticleRepository provides article storage and the query surface the
// read paths are built on. List-style operations return composite views
// so every wire-facing path shares one shape.
type ArticleRepository interface {
	// List retrieves a filtered, paginated page of article views sorted by
	// PublishedAt descending (ties keep insertion order).
	List(ctx context.Context, filter ArticleFilter) ([]ArticleWithDetails, error)
	// Get retrieves a single article view by id. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*ArticleWithDetails, error)
	// Create stores a new article, assigning its id and defaulted fields,
	// and returns the stored entity.
	Create(ctx context.Context, in CreateArticleInput) (*entity.Article, error)
	// Search returns views for every article where the query is a
	// case-insensitive substring of title, summary or any hashtag,
	// in insertion order. Validating non-empty queries is the caller's job.
	Search(ctx context.Context, query string) ([]ArticleWithDetails, error)
	// ByHashtag returns views for articles carrying an exact,
	// case-insensitive hashtag match. The tag is canonicalized (leading
	// "#" added) before matching.
	ByHashtag(ctx context.Context, tag string) ([]ArticleWithDetails, error)
	// ByActor returns views for every article whose ActorIDs contains the id.
	ByActor(ctx context.Context, actorID int64) ([]ArticleWithDetails, error)
	// Count returns the number of articles matching the filter's category
	// selector, for pagination metadata.
	Count(ctx context.Context, categorySlug string) (int64, error)
	// IncrementLike / IncrementShare bump an article's engagement counter.
	// They return entity.ErrNotFound for an absent article.
	IncrementLike(ctx context.Context, id int64) (*entity.Article, error)
	IncrementShare(ctx context.Context, id int64) (*entity.Article, error)
}
