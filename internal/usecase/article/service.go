package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astrobuzz/internal/common/pagination"
	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title         string
	Summary       string
	Content       string
	CategoryID    int64
	PublishedAt   time.Time // zero means "now"
	AstroAnalysis string
	AstroGlyphs   []entity.AstroGlyph
	Hashtags      []string
	ActorIDs      []int64
	IsCelebrity   bool
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates storage
// to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult represents one page of article views plus pagination
// metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithDetails
	Pagination pagination.Metadata
}

// List retrieves a page of articles under the category selector, newest
// first. The slug semantics ("top"/empty/unknown all mean the unfiltered
// set) live in the repository; this layer only adds pagination metadata.
func (s *Service) List(ctx context.Context, categorySlug string, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	data, err := s.Repo.List(ctx, repository.ArticleFilter{
		CategorySlug: categorySlug,
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data: data,
		Pagination: pagination.Metadata{
			Total:  total,
			Limit:  params.Limit,
			Offset: params.Offset,
		},
	}, nil
}

// Get retrieves a single composite article view by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithDetails, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Create creates a new article with the provided input.
// Returns a ValidationError if any required field is missing or invalid,
// including a CategoryID that does not resolve to a stored category.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Summary == "" {
		return nil, &entity.ValidationError{Field: "summary", Message: "is required"}
	}
	if in.CategoryID <= 0 {
		return nil, &entity.ValidationError{Field: "categoryId", Message: "must be positive"}
	}
	for _, id := range in.ActorIDs {
		if id <= 0 {
			return nil, &entity.ValidationError{Field: "actorIds", Message: "must be positive"}
		}
	}

	art, err := s.Repo.Create(ctx, repository.CreateArticleInput{
		Title:         in.Title,
		Summary:       in.Summary,
		Content:       in.Content,
		CategoryID:    in.CategoryID,
		PublishedAt:   in.PublishedAt,
		AstroAnalysis: in.AstroAnalysis,
		AstroGlyphs:   in.AstroGlyphs,
		Hashtags:      in.Hashtags,
		ActorIDs:      in.ActorIDs,
		IsCelebrity:   in.IsCelebrity,
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Search finds articles matching the given query.
// The search is a case-insensitive substring match against titles,
// summaries and hashtags. Rejecting an empty query is the transport
// layer's responsibility, mirroring the store contract.
func (s *Service) Search(ctx context.Context, query string) ([]repository.ArticleWithDetails, error) {
	articles, err := s.Repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// ByHashtag finds articles carrying the hashtag (exact, case-insensitive).
func (s *Service) ByHashtag(ctx context.Context, tag string) ([]repository.ArticleWithDetails, error) {
	articles, err := s.Repo.ByHashtag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("articles by hashtag: %w", err)
	}
	return articles, nil
}

// Like bumps an article's like counter.
// Returns ErrInvalidArticleID or ErrArticleNotFound accordingly.
func (s *Service) Like(ctx context.Context, id int64) (*entity.Article, error) {
	return s.bump(ctx, id, s.Repo.IncrementLike, "like")
}

// Share bumps an article's share counter.
// Returns ErrInvalidArticleID or ErrArticleNotFound accordingly.
func (s *Service) Share(ctx context.Context, id int64) (*entity.Article, error) {
	return s.bump(ctx, id, s.Repo.IncrementShare, "share")
}

func (s *Service) bump(
	ctx context.Context,
	id int64,
	op func(context.Context, int64) (*entity.Article, error),
	name string,
) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := op(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("%s article: %w", name, err)
	}
	return art, nil
}
