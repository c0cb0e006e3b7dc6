// Package user provides use cases for accounts and their content
// interactions: registration, credential checks, bookmarks and follows.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUsernameTaken indicates a registration with an already-used username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrArticleNotFound indicates a bookmark of a non-existent article.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidFollowTarget indicates a follow/unfollow without exactly
	// one of actor id and hashtag set.
	ErrInvalidFollowTarget = errors.New("exactly one of actorId and hashtag must be set")
)
