package memory

import (
	"context"
	"sort"
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/observability/metrics"
	"astrobuzz/internal/repository"
)

// minSharedArticles is the co-appearance threshold for an inferred
// relationship: one shared article is coincidence, two or more is a
// "ship". Fixed by product design, not configurable.
const minSharedArticles = 2

// ActorRepo implements repository.ActorRepository on a shared Store.
type ActorRepo struct{ s *Store }

var _ repository.ActorRepository = (*ActorRepo)(nil)

// NewActorRepo returns an actor repository backed by the store.
func NewActorRepo(s *Store) *ActorRepo { return &ActorRepo{s: s} }

// List returns all actors in insertion order.
func (r *ActorRepo) List(ctx context.Context) ([]*entity.Actor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Actor, 0, len(r.s.actors))
	for _, id := range sortedIDs(r.s.actors) {
		out = append(out, copyActor(r.s.actors[id]))
	}
	return out, nil
}

// Get returns the actor or (nil, nil) when absent.
func (r *ActorRepo) Get(ctx context.Context, id int64) (*entity.Actor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.actors[id]
	if !ok {
		return nil, nil
	}
	return copyActor(a), nil
}

// GetBySlug looks an actor up by its unique slug via linear scan.
// Returns (nil, nil) when no actor has the slug.
func (r *ActorRepo) GetBySlug(ctx context.Context, slug string) (*entity.Actor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.actors {
		if a.Slug == slug {
			return copyActor(a), nil
		}
	}
	return nil, nil
}

// Create stores a new actor under the next id.
// Returns entity.ErrDuplicate when the slug is taken.
func (r *ActorRepo) Create(ctx context.Context, in repository.CreateActorInput) (*entity.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.actors {
		if a.Slug == in.Slug {
			return nil, entity.ErrDuplicate
		}
	}
	actor := r.s.insertActor(in)
	return copyActor(actor), nil
}

// insertActor assigns the next id and stores the actor.
// Callers must hold the write lock.
func (s *Store) insertActor(in repository.CreateActorInput) *entity.Actor {
	s.actorID++
	actor := &entity.Actor{
		ID:           s.actorID,
		Name:         in.Name,
		Slug:         in.Slug,
		Category:     in.Category,
		SunSign:      in.SunSign,
		MoonSign:     in.MoonSign,
		RisingSign:   in.RisingSign,
		ProfileImage: in.ProfileImage,
	}
	s.actors[actor.ID] = actor
	return actor
}

// Relationships infers related actors from article co-appearances.
//
// It scans every article containing the target actor and counts, per other
// actor, the number of shared articles. Actors below minSharedArticles are
// discarded, ids that no longer resolve are dropped by omission, and the
// survivors are sorted by shared count descending with ties broken by
// actor id ascending so the result is deterministic for a fixed data set.
func (r *ActorRepo) Relationships(ctx context.Context, actorID int64) ([]repository.ActorRelationship, error) {
	start := time.Now()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[int64]int)
	for _, art := range r.s.articles {
		if !art.HasActor(actorID) {
			continue
		}
		// ActorIDs is a set in spirit; a duplicated id within one article
		// must not count twice.
		seen := make(map[int64]bool, len(art.ActorIDs))
		for _, other := range art.ActorIDs {
			if other != actorID && !seen[other] {
				seen[other] = true
				counts[other]++
			}
		}
	}

	out := make([]repository.ActorRelationship, 0, len(counts))
	for id, n := range counts {
		if n < minSharedArticles {
			continue
		}
		actor, ok := r.s.actors[id]
		if !ok {
			continue
		}
		out = append(out, repository.ActorRelationship{
			Actor:          copyActor(actor),
			SharedArticles: n,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SharedArticles != out[j].SharedArticles {
			return out[i].SharedArticles > out[j].SharedArticles
		}
		return out[i].Actor.ID < out[j].Actor.ID
	})

	metrics.RecordRelationshipInference(time.Since(start), len(out))
	return out, nil
}
