package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

func mustCreateActor(t *testing.T, repo *ActorRepo, name, slug string) *entity.Actor {
	t.Helper()
	actor, err := repo.Create(context.Background(), repository.CreateActorInput{
		Name: name, Slug: slug, Category: "music",
	})
	require.NoError(t, err)
	return actor
}

func TestActorRepo_CreateAndLookups(t *testing.T) {
	s, _, _ := newFixture(t)
	repo := NewActorRepo(s)
	ctx := context.Background()

	created := mustCreateActor(t, repo, "Taylor Swift", "taylor-swift")
	assert.EqualValues(t, 1, created.ID)

	byID, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Taylor Swift", byID.Name)

	bySlug, err := repo.GetBySlug(ctx, "taylor-swift")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, created.ID, bySlug.ID)

	absent, err := repo.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, absent)

	absent, err = repo.GetBySlug(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, absent)

	_, err = repo.Create(ctx, repository.CreateActorInput{Name: "Other", Slug: "taylor-swift"})
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

// relationshipFixture seeds actor 1 sharing articles with actors 2, 3, 4:
//   - with actor 2: two shared articles
//   - with actor 3: one shared article (below threshold)
//   - with actor 4: three shared articles
func relationshipFixture(t *testing.T) (*ActorRepo, *ArticleRepo) {
	t.Helper()

	s, articles, base := newFixture(t)
	actors := NewActorRepo(s)

	for _, a := range []struct{ name, slug string }{
		{"One", "one"}, {"Two", "two"}, {"Three", "three"}, {"Four", "four"},
	} {
		mustCreateActor(t, actors, a.name, a.slug)
	}

	for i, ids := range [][]int64{
		{1, 2, 4}, // shared: 2, 4
		{1, 2, 4}, // shared: 2, 4
		{1, 3, 4}, // shared: 3, 4
	} {
		mustCreateArticle(t, articles, repository.CreateArticleInput{
			CategoryID:  1,
			PublishedAt: base.Add(-time.Duration(i) * time.Hour),
			ActorIDs:    ids,
		})
	}

	return actors, articles
}

func TestActorRepo_Relationships_ThresholdAndOrder(t *testing.T) {
	actors, _ := relationshipFixture(t)
	ctx := context.Background()

	got, err := actors.Relationships(ctx, 1)
	require.NoError(t, err)

	// Actor 3 shares only one article: below the threshold, excluded.
	// Actor 4 (three shared) sorts before actor 2 (two shared).
	require.Len(t, got, 2)
	assert.EqualValues(t, 4, got[0].Actor.ID)
	assert.Equal(t, 3, got[0].SharedArticles)
	assert.EqualValues(t, 2, got[1].Actor.ID)
	assert.Equal(t, 2, got[1].SharedArticles)
}

func TestActorRepo_Relationships_SingleSharedArticleExcluded(t *testing.T) {
	// Spec scenario: actor 1 co-appears with actor 2 in articles {5,6}
	// and with actor 3 in one article only.
	s, articles, base := newFixture(t)
	actors := NewActorRepo(s)
	ctx := context.Background()

	mustCreateActor(t, actors, "A", "a")
	mustCreateActor(t, actors, "B", "b")
	mustCreateActor(t, actors, "C", "c")

	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 2, 3}})
	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 2}})

	got, err := actors.Relationships(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 2, got[0].Actor.ID)
}

func TestActorRepo_Relationships_Deterministic(t *testing.T) {
	actors, _ := relationshipFixture(t)
	ctx := context.Background()

	first, err := actors.Relationships(ctx, 1)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := actors.Relationships(ctx, 1)
		require.NoError(t, err)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].Actor.ID, again[j].Actor.ID)
		}
	}
}

func TestActorRepo_Relationships_TieBreakByActorID(t *testing.T) {
	s, articles, base := newFixture(t)
	actors := NewActorRepo(s)
	ctx := context.Background()

	mustCreateActor(t, actors, "A", "a")
	mustCreateActor(t, actors, "B", "b")
	mustCreateActor(t, actors, "C", "c")

	// Both 2 and 3 share exactly two articles with 1.
	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 2, 3}})
	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 3, 2}})

	got, err := actors.Relationships(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.EqualValues(t, 2, got[0].Actor.ID)
	assert.EqualValues(t, 3, got[1].Actor.ID)
}

func TestActorRepo_Relationships_DanglingActorDropped(t *testing.T) {
	s, articles, base := newFixture(t)
	actors := NewActorRepo(s)
	ctx := context.Background()

	mustCreateActor(t, actors, "A", "a")
	mustCreateActor(t, actors, "B", "b")

	// Actor 9 never exists; it co-appears often enough but cannot resolve.
	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 2, 9}})
	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 2, 9}})

	got, err := actors.Relationships(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 2, got[0].Actor.ID)
}

func TestActorRepo_Relationships_DuplicateIDsCountOnce(t *testing.T) {
	s, articles, base := newFixture(t)
	actors := NewActorRepo(s)
	ctx := context.Background()

	mustCreateActor(t, actors, "A", "a")
	mustCreateActor(t, actors, "B", "b")

	// One article repeating actor 2 must not fake a second co-appearance.
	mustCreateArticle(t, articles, repository.CreateArticleInput{CategoryID: 1, PublishedAt: base, ActorIDs: []int64{1, 2, 2}})

	got, err := actors.Relationships(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
