// Package actor provides use cases for actor profiles: listing, id-or-slug
// lookups, an actor's articles, and co-appearance relationship inference.
package actor

import (
	"context"
	"errors"
	"fmt"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// Sentinel errors for actor use case operations.
var (
	// ErrActorNotFound indicates that the requested actor was not found.
	ErrActorNotFound = errors.New("actor not found")

	// ErrInvalidActorID indicates that the provided actor ID is invalid.
	ErrInvalidActorID = errors.New("invalid actor ID")
)

// Service provides actor profile use cases. Articles is consulted for an
// actor's article list; relationship inference lives in the actor
// repository because it only reads actor/article state.
type Service struct {
	Repo     repository.ActorRepository
	Articles repository.ArticleRepository
}

// List retrieves all actors.
func (s *Service) List(ctx context.Context) ([]*entity.Actor, error) {
	actors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	return actors, nil
}

// Get retrieves an actor by its ID.
// Returns ErrInvalidActorID if the ID is not positive.
// Returns ErrActorNotFound if the actor does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Actor, error) {
	if id <= 0 {
		return nil, ErrInvalidActorID
	}

	actor, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, ErrActorNotFound
	}
	return actor, nil
}

// GetBySlug retrieves an actor by its unique slug.
// Returns ErrActorNotFound if no actor has the slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Actor, error) {
	actor, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get actor by slug: %w", err)
	}
	if actor == nil {
		return nil, ErrActorNotFound
	}
	return actor, nil
}

// Create stores a new actor.
// Returns a ValidationError for a missing name or malformed slug.
func (s *Service) Create(ctx context.Context, in repository.CreateActorInput) (*entity.Actor, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateSlug(in.Slug); err != nil {
		return nil, err
	}

	actor, err := s.Repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}
	return actor, nil
}

// ArticlesByActor retrieves every article the actor appears in.
// Returns ErrInvalidActorID for a non-positive id. An actor with no
// articles yields an empty list, not an error.
func (s *Service) ArticlesByActor(ctx context.Context, actorID int64) ([]repository.ArticleWithDetails, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}

	articles, err := s.Articles.ByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("articles by actor: %w", err)
	}
	return articles, nil
}

// Relationships infers the actor's related people from article
// co-appearances (two or more shared articles, most-shared first).
// Returns ErrActorNotFound when the actor itself does not exist, so the
// transport layer can distinguish "no relationships" from "no actor".
func (s *Service) Relationships(ctx context.Context, actorID int64) ([]repository.ActorRelationship, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}

	actor, err := s.Repo.Get(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, ErrActorNotFound
	}

	rels, err := s.Repo.Relationships(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("actor relationships: %w", err)
	}
	return rels, nil
}
