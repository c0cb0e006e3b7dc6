package repository

import (
	"context"

	"astrobuzz/internal/domain/entity"
)

// CreateCategoryInput carries the caller-supplied fields for a new category.
type CreateCategoryInput struct {
	Name  string
	Slug  string
	Color string
	Icon  string
}

// CategoryRepository stores the seeded category collection.
// Lookups by slug are linear scans; the collection is a handful of rows
// held in memory, so O(n) is by design, not a defect.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	// GetBySlug returns (nil, nil) when no category has the slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*entity.Category, error)
}

// CreateActorInput carries the caller-supplied fields for a new actor.
// The sign and image pointers may be nil.
type CreateActorInput struct {
	Name         string
	Slug         string
	Category     string // free-text label, not a Category FK
	SunSign      *string
	MoonSign     *string
	RisingSign   *string
	ProfileImage *string
}

// ActorRepository stores actors and answers the lookups the actor pages need.
// Slug lookups are linear scans, same rationale as CategoryRepository.
type ActorRepository interface {
	List(ctx context.Context) ([]*entity.Actor, error)
	// Get returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.Actor, error)
	// GetBySlug returns (nil, nil) when no actor has the slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Actor, error)
	Create(ctx context.Context, in CreateActorInput) (*entity.Actor, error)
	// Relationships infers "related people" for an actor from article
	// co-appearances: every other actor sharing at least two articles with
	// the target, sorted by shared-article count descending (ties by actor
	// id ascending, so results are deterministic).
	Relationships(ctx context.Context, actorID int64) ([]ActorRelationship, error)
}

// ActorRelationship pairs a related actor with the number of articles it
// shares with the queried actor.
type ActorRelationship struct {
	Actor          *entity.Actor
	SharedArticles int
}
