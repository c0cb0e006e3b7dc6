package entity

import "time"

// User represents an account that can bookmark articles and follow actors
// or hashtags. Password is stored as an opaque string; hardening the
// credential model is explicitly out of scope.
type User struct {
	ID       int64
	Username string // unique
	Password string
}

// UserBookmark records a user saving an article.
// At most one bookmark exists per (UserID, ArticleID) pair; the store
// enforces this on insert.
type UserBookmark struct {
	ID        int64
	UserID    int64
	ArticleID int64
	CreatedAt time.Time
}

// UserFollow records a user following either an actor or a hashtag topic.
// Exactly one of ActorID and Hashtag is set; the other is nil.
type UserFollow struct {
	ID        int64
	UserID    int64
	ActorID   *int64
	Hashtag   *string
	CreatedAt time.Time
}

// Target returns the follow discriminator that is set.
// Useful for logging; the zero values signal a corrupt record.
func (f *UserFollow) Target() (actorID int64, hashtag string) {
	if f.ActorID != nil {
		return *f.ActorID, ""
	}
	if f.Hashtag != nil {
		return 0, *f.Hashtag
	}
	return 0, ""
}
