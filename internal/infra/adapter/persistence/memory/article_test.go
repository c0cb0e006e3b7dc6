package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// newFixture builds an empty store with a deterministic clock and the two
// categories the concrete spec scenarios use.
func newFixture(t *testing.T) (*Store, *ArticleRepo, time.Time) {
	t.Helper()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return base }

	cats := NewCategoryRepo(s)
	ctx := context.Background()
	_, err := cats.Create(ctx, repository.CreateCategoryInput{Name: "Top", Slug: "top", Color: "c1", Icon: "star"})
	require.NoError(t, err)
	_, err = cats.Create(ctx, repository.CreateCategoryInput{Name: "Tech", Slug: "tech", Color: "c2", Icon: "cpu"})
	require.NoError(t, err)

	return s, NewArticleRepo(s), base
}

func mustCreateArticle(t *testing.T, repo *ArticleRepo, in repository.CreateArticleInput) *entity.Article {
	t.Helper()
	art, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	return art
}

func TestArticleRepo_List_CategoryFilterAndOrder(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	// Spec scenario: two tech articles, t2 > t1. Listing by "tech" must
	// return [article2, article1], newest first.
	t1 := base.Add(-2 * time.Hour)
	t2 := base.Add(-1 * time.Hour)
	a1 := mustCreateArticle(t, repo, repository.CreateArticleInput{Title: "first", CategoryID: 2, PublishedAt: t1})
	a2 := mustCreateArticle(t, repo, repository.CreateArticleInput{Title: "second", CategoryID: 2, PublishedAt: t2})
	top := mustCreateArticle(t, repo, repository.CreateArticleInput{Title: "elsewhere", CategoryID: 1, PublishedAt: base})

	got, err := repo.List(ctx, repository.ArticleFilter{CategorySlug: "tech", Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a2.ID, got[0].Article.ID)
	assert.Equal(t, a1.ID, got[1].Article.ID)

	// The unrelated article is excluded by the filter...
	for _, d := range got {
		assert.NotEqual(t, top.ID, d.Article.ID)
	}

	// ...and every listing position respects publishedAt descending.
	all, err := repo.List(ctx, repository.ArticleFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].Article.PublishedAt.Before(all[i].Article.PublishedAt),
			"position %d published before position %d", i-1, i)
	}
}

func TestArticleRepo_List_StableTieBreak(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	// Same instant: insertion order must win, deterministically.
	for _, title := range []string{"one", "two", "three"} {
		mustCreateArticle(t, repo, repository.CreateArticleInput{Title: title, CategoryID: 1, PublishedAt: base})
	}

	got, err := repo.List(ctx, repository.ArticleFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 3)
	titles := []string{got[0].Article.Title, got[1].Article.Title, got[2].Article.Title}
	assert.Equal(t, []string{"one", "two", "three"}, titles)
}

func TestArticleRepo_List_Pagination(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreateArticle(t, repo, repository.CreateArticleInput{
			CategoryID:  1,
			PublishedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}

	tests := []struct {
		name    string
		limit   int
		offset  int
		wantIDs []int64
	}{
		{"first page", 2, 0, []int64{1, 2}},
		{"second page", 2, 2, []int64{3, 4}},
		{"partial last page", 2, 4, []int64{5}},
		{"offset at end", 2, 5, nil},
		{"offset beyond end", 2, 100, nil},
		{"limit beyond size", 50, 0, []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, repository.ArticleFilter{Limit: tt.limit, Offset: tt.offset})
			require.NoError(t, err)
			var ids []int64
			for _, d := range got {
				ids = append(ids, d.Article.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestArticleRepo_List_TopAndUnknownSlugs(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base})
	mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 2, PublishedAt: base})

	// "top" is the all-articles sentinel.
	got, err := repo.List(ctx, repository.ArticleFilter{CategorySlug: "top", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// A slug that resolves to nothing falls back to the unfiltered set.
	// This pins the shipped behavior; see repository.ArticleFilter.
	got, err = repo.List(ctx, repository.ArticleFilter{CategorySlug: "no-such-section", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestArticleRepo_Create_RoundTripWithDefaults(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	in := repository.CreateArticleInput{
		Title:         "Mercury Stations Direct",
		Summary:       "Communication clears up",
		Content:       "Full text",
		CategoryID:    2,
		AstroAnalysis: "A welcome shift",
		AstroGlyphs:   []entity.AstroGlyph{{Planet: "mercury", Color: "blue", Symbol: "Rx"}},
		Hashtags:      []string{"#mercury", "retrograde"}, // second tag not canonical
		ActorIDs:      []int64{42},                        // dangling on purpose
		IsCelebrity:   true,
	}

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, base, created.PublishedAt, "zero PublishedAt defaults to now")
	assert.Zero(t, created.LikeCount)
	assert.Zero(t, created.ShareCount)
	assert.Zero(t, created.BookmarkCount)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := &entity.Article{
		ID:            created.ID,
		Title:         in.Title,
		Summary:       in.Summary,
		Content:       in.Content,
		CategoryID:    in.CategoryID,
		PublishedAt:   base,
		AstroAnalysis: in.AstroAnalysis,
		AstroGlyphs:   in.AstroGlyphs,
		Hashtags:      []string{"#mercury", "#retrograde"}, // canonicalized on create
		ActorIDs:      []int64{42},
		IsCelebrity:   true,
	}
	if diff := cmp.Diff(want, got.Article); diff != "" {
		t.Errorf("round-tripped article mismatch (-want +got):\n%s", diff)
	}

	// The dangling actor id is dropped from the view, not null-filled.
	assert.Empty(t, got.Actors)
	assert.Equal(t, "tech", got.Category.Slug)
}

func TestArticleRepo_Create_UnknownCategoryRejected(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	healthy := mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base})

	// A write whose category resolves to nothing must be rejected up
	// front; stored, it would break every composite read that follows.
	_, err := repo.Create(ctx, repository.CreateArticleInput{
		Title: "orphan", Summary: "no home", CategoryID: 999, PublishedAt: base,
	})
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "categoryId", verr.Field)

	// The feed is untouched by the rejected write.
	got, err := repo.List(ctx, repository.ArticleFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, healthy.ID, got[0].Article.ID)
}

func TestArticleRepo_Get_Absent(t *testing.T) {
	_, repo, _ := newFixture(t)

	got, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArticleRepo_Get_DanglingCategory(t *testing.T) {
	s, repo, base := newFixture(t)
	ctx := context.Background()

	art := mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 2, PublishedAt: base})

	// Categories are never deleted in production; force the invariant
	// breach to check it fails loudly instead of corrupting the view.
	s.mu.Lock()
	delete(s.categories, 2)
	s.mu.Unlock()

	_, err := repo.Get(ctx, art.ID)
	assert.ErrorIs(t, err, entity.ErrDanglingCategory)
}

func TestArticleRepo_Search(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	mustCreateArticle(t, repo, repository.CreateArticleInput{
		Title: "Jupiter Rising", Summary: "luck abounds", CategoryID: 1, PublishedAt: base,
	})
	mustCreateArticle(t, repo, repository.CreateArticleInput{
		Title: "Quiet Skies", Summary: "JUPITER transits finish", CategoryID: 1, PublishedAt: base,
	})
	mustCreateArticle(t, repo, repository.CreateArticleInput{
		Title: "Moon Water", Summary: "lifestyle", Hashtags: []string{"#JupiterSeason"}, CategoryID: 1, PublishedAt: base,
	})
	mustCreateArticle(t, repo, repository.CreateArticleInput{
		Title: "Saturn Returns", Summary: "discipline", CategoryID: 1, PublishedAt: base,
	})

	got, err := repo.Search(ctx, "jupiter")
	require.NoError(t, err)
	require.Len(t, got, 3, "title, summary and hashtag matches, no false positives")

	// Insertion order, not ranking.
	assert.Equal(t, int64(1), got[0].Article.ID)
	assert.Equal(t, int64(2), got[1].Article.ID)
	assert.Equal(t, int64(3), got[2].Article.ID)
}

func TestArticleRepo_ByHashtag(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	mustCreateArticle(t, repo, repository.CreateArticleInput{
		Hashtags: []string{"#Eclipse", "#climate"}, CategoryID: 1, PublishedAt: base,
	})
	mustCreateArticle(t, repo, repository.CreateArticleInput{
		Hashtags: []string{"#EclipseSeason"}, CategoryID: 1, PublishedAt: base,
	})

	tests := []struct {
		name    string
		tag     string
		wantIDs []int64
	}{
		{"exact", "#Eclipse", []int64{1}},
		{"case insensitive", "#eclipse", []int64{1}},
		{"missing hash prefix", "eclipse", []int64{1}},
		{"exact not substring", "#Eclip", nil},
		{"longer tag only matches itself", "#eclipseseason", []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ByHashtag(ctx, tt.tag)
			require.NoError(t, err)
			var ids []int64
			for _, d := range got {
				ids = append(ids, d.Article.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestArticleRepo_ByActor(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	mustCreateArticle(t, repo, repository.CreateArticleInput{ActorIDs: []int64{1, 2}, CategoryID: 1, PublishedAt: base})
	mustCreateArticle(t, repo, repository.CreateArticleInput{ActorIDs: []int64{2}, CategoryID: 1, PublishedAt: base})
	mustCreateArticle(t, repo, repository.CreateArticleInput{ActorIDs: []int64{}, CategoryID: 1, PublishedAt: base})

	got, err := repo.ByActor(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.ByActor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.ByActor(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArticleRepo_Count(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base})
	mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 2, PublishedAt: base})
	mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 2, PublishedAt: base})

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	tech, err := repo.Count(ctx, "tech")
	require.NoError(t, err)
	assert.EqualValues(t, 2, tech)
}

func TestArticleRepo_Increments(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	art := mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base})

	liked, err := repo.IncrementLike(ctx, art.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	shared, err := repo.IncrementShare(ctx, art.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, shared.ShareCount)
	assert.Equal(t, 1, shared.LikeCount, "like survives the share bump")

	_, err = repo.IncrementLike(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestArticleRepo_ReturnedEntitiesAreCopies(t *testing.T) {
	_, repo, base := newFixture(t)
	ctx := context.Background()

	created := mustCreateArticle(t, repo, repository.CreateArticleInput{
		Title: "original", Hashtags: []string{"#tag"}, CategoryID: 1, PublishedAt: base,
	})
	created.Title = "mutated"
	created.Hashtags[0] = "#mutated"

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Article.Title)
	assert.Equal(t, "#tag", got.Article.Hashtags[0])
}

func TestStore_IDsNeverReused(t *testing.T) {
	s, repo, base := newFixture(t)
	ctx := context.Background()

	a := mustCreateArticle(t, repo, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base})

	s.mu.Lock()
	delete(s.articles, a.ID)
	s.mu.Unlock()

	b, err := repo.Create(ctx, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base})
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID, "counter does not rewind after deletion")
}
