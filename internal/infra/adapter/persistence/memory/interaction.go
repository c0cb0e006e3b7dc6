package memory

import (
	"context"
	"strings"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// InteractionRepo implements repository.InteractionRepository on a shared
// Store. Bookmarks and follows are append-mostly join records; both keep
// insertion order through the id counter.
type InteractionRepo struct{ s *Store }

var _ repository.InteractionRepository = (*InteractionRepo)(nil)

// NewInteractionRepo returns a bookmark/follow repository backed by the store.
func NewInteractionRepo(s *Store) *InteractionRepo { return &InteractionRepo{s: s} }

// Bookmark saves an article for a user. Idempotent: a second bookmark of
// the same (user, article) pair returns the existing record instead of
// inserting a duplicate. The article's BookmarkCount moves only on a real
// insert. Returns entity.ErrNotFound for an absent article.
func (r *InteractionRepo) Bookmark(ctx context.Context, userID, articleID int64) (*entity.UserBookmark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	art, ok := r.s.articles[articleID]
	if !ok {
		return nil, entity.ErrNotFound
	}

	for _, b := range r.s.bookmarks {
		if b.UserID == userID && b.ArticleID == articleID {
			cp := *b
			return &cp, nil
		}
	}

	r.s.bookmarkID++
	b := &entity.UserBookmark{
		ID:        r.s.bookmarkID,
		UserID:    userID,
		ArticleID: articleID,
		CreatedAt: r.s.now(),
	}
	r.s.bookmarks[b.ID] = b
	art.BookmarkCount++

	cp := *b
	return &cp, nil
}

// RemoveBookmark deletes the user's bookmark of the article, if present,
// and decrements the article's BookmarkCount. Removing an absent bookmark
// is a no-op.
func (r *InteractionRepo) RemoveBookmark(ctx context.Context, userID, articleID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, b := range r.s.bookmarks {
		if b.UserID == userID && b.ArticleID == articleID {
			delete(r.s.bookmarks, id)
			if art, ok := r.s.articles[articleID]; ok && art.BookmarkCount > 0 {
				art.BookmarkCount--
			}
			return nil
		}
	}
	return nil
}

// Bookmarks returns composite views of the user's bookmarked articles in
// bookmark insertion order. Bookmarks of since-removed articles are
// skipped by omission.
func (r *InteractionRepo) Bookmarks(ctx context.Context, userID int64) ([]repository.ArticleWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []repository.ArticleWithDetails
	for _, id := range sortedIDs(r.s.bookmarks) {
		b := r.s.bookmarks[id]
		if b.UserID != userID {
			continue
		}
		art, ok := r.s.articles[b.ArticleID]
		if !ok {
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

// FollowActor appends a follow record targeting an actor.
func (r *InteractionRepo) FollowActor(ctx context.Context, userID, actorID int64) (*entity.UserFollow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.followID++
	f := &entity.UserFollow{
		ID:        r.s.followID,
		UserID:    userID,
		ActorID:   &actorID,
		CreatedAt: r.s.now(),
	}
	r.s.follows[f.ID] = f
	cp := *f
	return &cp, nil
}

// FollowHashtag appends a follow record targeting a hashtag topic.
// The hashtag is stored in canonical form.
func (r *InteractionRepo) FollowHashtag(ctx context.Context, userID int64, hashtag string) (*entity.UserFollow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tag := entity.CanonicalHashtag(hashtag)
	r.s.followID++
	f := &entity.UserFollow{
		ID:        r.s.followID,
		UserID:    userID,
		Hashtag:   &tag,
		CreatedAt: r.s.now(),
	}
	r.s.follows[f.ID] = f
	cp := *f
	return &cp, nil
}

// Unfollow removes the first follow matching the user and the given
// discriminator (actorID when non-zero, otherwise hashtag). A call with
// neither discriminator set is rejected with entity.ErrInvalidInput
// rather than treated as a silent no-op.
func (r *InteractionRepo) Unfollow(ctx context.Context, userID int64, actorID int64, hashtag string) error {
	if actorID == 0 && hashtag == "" {
		return entity.ErrInvalidInput
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tag := strings.ToLower(entity.CanonicalHashtag(hashtag))
	for _, id := range sortedIDs(r.s.follows) {
		f := r.s.follows[id]
		if f.UserID != userID {
			continue
		}
		if actorID != 0 {
			if f.ActorID != nil && *f.ActorID == actorID {
				delete(r.s.follows, id)
				return nil
			}
			continue
		}
		if f.Hashtag != nil && strings.ToLower(*f.Hashtag) == tag {
			delete(r.s.follows, id)
			return nil
		}
	}
	return nil
}

// Following partitions the user's follows into resolved actors and
// hashtag strings, in follow insertion order. Dangling actor follows are
// dropped by omission.
func (r *InteractionRepo) Following(ctx context.Context, userID int64) (*repository.Following, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := &repository.Following{
		Actors:   []*entity.Actor{},
		Hashtags: []string{},
	}
	for _, id := range sortedIDs(r.s.follows) {
		f := r.s.follows[id]
		if f.UserID != userID {
			continue
		}
		if f.ActorID != nil {
			if actor, ok := r.s.actors[*f.ActorID]; ok {
				out.Actors = append(out.Actors, copyActor(actor))
			}
			continue
		}
		if f.Hashtag != nil {
			out.Hashtags = append(out.Hashtags, *f.Hashtag)
		}
	}
	return out, nil
}
