package user

import (
	"context"
	"errors"
	"fmt"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// Service provides account and interaction use cases.
type Service struct {
	Users        repository.UserRepository
	Interactions repository.InteractionRepository
}

// Register creates a new user account.
// Returns a ValidationError for missing fields and ErrUsernameTaken for a
// duplicate username. Passwords are stored as-is; hardening the credential
// model is out of scope.
func (s *Service) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" {
		return nil, &entity.ValidationError{Field: "username", Message: "is required"}
	}
	if password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "is required"}
	}

	u, err := s.Users.Create(ctx, username, password)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate checks a username/password pair and returns the account.
// Returns ErrInvalidCredentials on any mismatch, without distinguishing
// unknown users from wrong passwords.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get retrieves an account by id, for resolving authenticated subjects.
// Returns ErrUserNotFound when the account does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetByUsername retrieves an account by username.
// Returns ErrUserNotFound when the account does not exist.
func (s *Service) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Bookmark saves an article for the user. Idempotent per the store
// contract. Returns ErrArticleNotFound for a missing article.
func (s *Service) Bookmark(ctx context.Context, userID, articleID int64) (*entity.UserBookmark, error) {
	if articleID <= 0 {
		return nil, ErrArticleNotFound
	}

	b, err := s.Interactions.Bookmark(ctx, userID, articleID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("bookmark article: %w", err)
	}
	return b, nil
}

// RemoveBookmark deletes the user's bookmark of the article, if any.
func (s *Service) RemoveBookmark(ctx context.Context, userID, articleID int64) error {
	if err := s.Interactions.RemoveBookmark(ctx, userID, articleID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// Bookmarks lists the user's saved articles as composite views.
func (s *Service) Bookmarks(ctx context.Context, userID int64) ([]repository.ArticleWithDetails, error) {
	views, err := s.Interactions.Bookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return views, nil
}

// Follow records a follow of either an actor or a hashtag.
// Exactly one of actorID (non-zero) and hashtag (non-empty) must be set.
func (s *Service) Follow(ctx context.Context, userID, actorID int64, hashtag string) (*entity.UserFollow, error) {
	switch {
	case actorID > 0 && hashtag == "":
		f, err := s.Interactions.FollowActor(ctx, userID, actorID)
		if err != nil {
			return nil, fmt.Errorf("follow actor: %w", err)
		}
		return f, nil
	case actorID == 0 && hashtag != "":
		f, err := s.Interactions.FollowHashtag(ctx, userID, hashtag)
		if err != nil {
			return nil, fmt.Errorf("follow hashtag: %w", err)
		}
		return f, nil
	default:
		return nil, ErrInvalidFollowTarget
	}
}

// Unfollow removes the first follow matching the given discriminator.
// Returns ErrInvalidFollowTarget when neither is set.
func (s *Service) Unfollow(ctx context.Context, userID, actorID int64, hashtag string) error {
	if err := s.Interactions.Unfollow(ctx, userID, actorID, hashtag); err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			return ErrInvalidFollowTarget
		}
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// Following partitions the user's follows into actors and hashtags.
func (s *Service) Following(ctx context.Context, userID int64) (*repository.Following, error) {
	f, err := s.Interactions.Following(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	return f, nil
}
