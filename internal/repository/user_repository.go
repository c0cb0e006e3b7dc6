package repository

import (
	"context"

	"astrobuzz/internal/domain/entity"
)

// UserRepository stores user accounts. Username lookups are linear scans
// over the in-memory collection.
type UserRepository interface {
	// Get returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername returns (nil, nil) when no user has the username.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create stores a new user. Returns entity.ErrDuplicate when the
	// username is already taken.
	Create(ctx context.Context, username, password string) (*entity.User, error)
}

// Following partitions a user's follows into resolved actors and raw
// hashtag strings.
type Following struct {
	Actors   []*entity.Actor
	Hashtags []string
}

// InteractionRepository stores bookmarks and follows, the two join-like
// collections linking users to content.
type InteractionRepository interface {
	// Bookmark saves an article for a user. The operation is idempotent:
	// when a bookmark for the (user, article) pair already exists it is
	// returned unchanged and no duplicate is inserted. The article's
	// BookmarkCount is incremented on first insert.
	// Returns entity.ErrNotFound when the article does not exist.
	Bookmark(ctx context.Context, userID, articleID int64) (*entity.UserBookmark, error)
	// RemoveBookmark deletes the user's bookmark of the article, if any,
	// and decrements the article's BookmarkCount. Removing an absent
	// bookmark is a no-op.
	RemoveBookmark(ctx context.Context, userID, articleID int64) error
	// Bookmarks returns the user's bookmarked articles as composite views,
	// in bookmark insertion order. Bookmarks of since-removed articles are
	// silently skipped.
	Bookmarks(ctx context.Context, userID int64) ([]ArticleWithDetails, error)

	// FollowActor / FollowHashtag append a follow record with exactly one
	// discriminator set.
	FollowActor(ctx context.Context, userID, actorID int64) (*entity.UserFollow, error)
	FollowHashtag(ctx context.Context, userID int64, hashtag string) (*entity.UserFollow, error)
	// Unfollow removes the first follow matching the user and the given
	// discriminator. Exactly one of actorID/hashtag must be set (actorID
	// zero means unset); entity.ErrInvalidInput otherwise.
	Unfollow(ctx context.Context, userID int64, actorID int64, hashtag string) error
	// Following partitions the user's follows into resolved actors and
	// hashtag strings. Dangling actor follows are silently dropped.
	Following(ctx context.Context, userID int64) (*Following, error)
}
