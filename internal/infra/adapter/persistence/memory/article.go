package memory

import (
	"context"
	"sort"
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/observability/metrics"
	"astrobuzz/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository on a shared Store.
type ArticleRepo struct{ s *Store }

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// NewArticleRepo returns an article repository backed by the store.
func NewArticleRepo(s *Store) *ArticleRepo { return &ArticleRepo{s: s} }

// List returns a filtered, paginated page of composite views.
//
// Ordering: PublishedAt descending with a stable sort, so articles
// published at the same instant keep insertion order. Pagination uses
// slice semantics: Offset items skipped, then up to Limit returned; an
// offset past the end yields an empty page, never an error.
func (r *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]repository.ArticleWithDetails, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("list_articles", time.Since(start)) }()

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := r.s.filterByCategory(filter.CategorySlug)

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})

	page := window(matched, filter.Offset, filter.Limit)

	out := make([]repository.ArticleWithDetails, 0, len(page))
	for _, art := range page {
		d, err := r.s.details(art)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// filterByCategory snapshots articles in insertion order, narrowed to the
// category the slug resolves to. Callers must hold at least the read lock.
func (s *Store) filterByCategory(slug string) []*entity.Article {
	catID, filtered := s.resolveCategorySlug(slug)

	out := make([]*entity.Article, 0, len(s.articles))
	for _, id := range s.sortedArticleIDs() {
		art := s.articles[id]
		if filtered && art.CategoryID != catID {
			continue
		}
		out = append(out, art)
	}
	return out
}

// window applies offset/limit slice semantics to a result set.
func window[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// Get returns the composite view for an article, or (nil, nil) when absent.
func (r *ArticleRepo) Get(ctx context.Context, id int64) (*repository.ArticleWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	art, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	d, err := r.s.details(art)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create stores a new article, assigning the next id and defaulting
// PublishedAt to now when unset. Hashtags are normalized to canonical
// form (leading "#") on the way in, so lookups have a single stored form
// to match against. The category must already exist: an article whose
// CategoryID resolves to nothing would fail every composite read after
// it, so the write is rejected instead under the same lock.
func (r *ArticleRepo) Create(ctx context.Context, in repository.CreateArticleInput) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[in.CategoryID]; !ok {
		return nil, &entity.ValidationError{Field: "categoryId", Message: "references an unknown category"}
	}

	publishedAt := in.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = r.s.now()
	}

	tags := make([]string, 0, len(in.Hashtags))
	for _, t := range in.Hashtags {
		tags = append(tags, entity.CanonicalHashtag(t))
	}

	r.s.articleID++
	art := &entity.Article{
		ID:            r.s.articleID,
		Title:         in.Title,
		Summary:       in.Summary,
		Content:       in.Content,
		CategoryID:    in.CategoryID,
		PublishedAt:   publishedAt,
		AstroAnalysis: in.AstroAnalysis,
		AstroGlyphs:   append([]entity.AstroGlyph(nil), in.AstroGlyphs...),
		Hashtags:      tags,
		ActorIDs:      append([]int64(nil), in.ActorIDs...),
		IsCelebrity:   in.IsCelebrity,
	}
	r.s.articles[art.ID] = art
	return copyArticle(art), nil
}

// Search returns views for every article matching the query predicate
// (case-insensitive substring of title, summary or any hashtag), in
// insertion order. Empty-query validation is the caller's responsibility.
func (r *ArticleRepo) Search(ctx context.Context, query string) ([]repository.ArticleWithDetails, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("search_articles", time.Since(start)) }()

	return r.collect(func(a *entity.Article) bool { return a.MatchesQuery(query) })
}

// ByHashtag returns views for articles with an exact case-insensitive
// hashtag match, after canonicalizing the requested tag.
func (r *ArticleRepo) ByHashtag(ctx context.Context, tag string) ([]repository.ArticleWithDetails, error) {
	return r.collect(func(a *entity.Article) bool { return a.HasHashtag(tag) })
}

// ByActor returns views for every article listing the actor.
func (r *ArticleRepo) ByActor(ctx context.Context, actorID int64) ([]repository.ArticleWithDetails, error) {
	return r.collect(func(a *entity.Article) bool { return a.HasActor(actorID) })
}

// collect builds composite views for all articles satisfying the
// predicate, in insertion order.
func (r *ArticleRepo) collect(match func(*entity.Article) bool) ([]repository.ArticleWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []repository.ArticleWithDetails
	for _, id := range r.s.sortedArticleIDs() {
		art := r.s.articles[id]
		if !match(art) {
			continue
		}
		d, err := r.s.details(art)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Count returns the number of articles under the category selector,
// using the same slug resolution rules as List.
func (r *ArticleRepo) Count(ctx context.Context, categorySlug string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.filterByCategory(categorySlug))), nil
}

// IncrementLike bumps an article's like counter and returns the updated
// entity, or entity.ErrNotFound when the article is absent.
func (r *ArticleRepo) IncrementLike(ctx context.Context, id int64) (*entity.Article, error) {
	return r.increment(id, func(a *entity.Article) { a.LikeCount++ })
}

// IncrementShare bumps an article's share counter and returns the updated
// entity, or entity.ErrNotFound when the article is absent.
func (r *ArticleRepo) IncrementShare(ctx context.Context, id int64) (*entity.Article, error) {
	return r.increment(id, func(a *entity.Article) { a.ShareCount++ })
}

func (r *ArticleRepo) increment(id int64, bump func(*entity.Article)) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	art, ok := r.s.articles[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	bump(art)
	return copyArticle(art), nil
}
