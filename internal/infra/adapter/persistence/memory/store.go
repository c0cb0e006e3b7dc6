// Package memory implements every repository interface on top of id-keyed
// in-process maps. It is the system's only backing store: the data set is
// small, read-mostly and rebuilt from seed data on each start, so durability
// is deliberately not provided.
//
// Concurrency: a single RWMutex guards all collections and id counters.
// Counter increment and insert happen atomically under the write lock, so
// ids are never reused or duplicated. Read operations snapshot under the
// read lock and build result views from copies, never aliasing stored
// entities to callers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// Store holds every entity collection behind one lock. The repository
// implementations (CategoryRepo, ActorRepo, ArticleRepo, UserRepo,
// InteractionRepo) all wrap one shared *Store, the same way the repo
// constructors would share a database handle with a durable backend.
type Store struct {
	mu sync.RWMutex

	categories map[int64]*entity.Category
	actors     map[int64]*entity.Actor
	articles   map[int64]*entity.Article
	users      map[int64]*entity.User
	bookmarks  map[int64]*entity.UserBookmark
	follows    map[int64]*entity.UserFollow

	// Per-collection auto-increment counters. Never reused, even after a
	// record is deleted, so a stale id can never resolve to a new record.
	categoryID int64
	actorID    int64
	articleID  int64
	userID     int64
	bookmarkID int64
	followID   int64

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// New returns an empty store. Most callers want NewSeeded.
func New() *Store {
	return &Store{
		categories: make(map[int64]*entity.Category),
		actors:     make(map[int64]*entity.Actor),
		articles:   make(map[int64]*entity.Article),
		users:      make(map[int64]*entity.User),
		bookmarks:  make(map[int64]*entity.UserBookmark),
		follows:    make(map[int64]*entity.UserFollow),
		now:        time.Now,
	}
}

// NewSeeded returns a store pre-populated with the demo content set.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

// Ping reports whether the store is usable. An in-process store has no
// connection to lose, so this only fails when the store was never
// initialized. It exists so health checks can treat the store like any
// other backend.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.categories == nil {
		return fmt.Errorf("store not initialized: %w", entity.ErrInvalidInput)
	}
	return nil
}

// Counts returns per-collection record counts, keyed by collection name.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"categories": len(s.categories),
		"actors":     len(s.actors),
		"articles":   len(s.articles),
		"users":      len(s.users),
		"bookmarks":  len(s.bookmarks),
		"follows":    len(s.follows),
	}
}

// sortedArticleIDs returns article ids ascending. Ids are assigned by an
// ever-increasing counter, so ascending id order is insertion order.
// Callers must hold at least the read lock.
func (s *Store) sortedArticleIDs() []int64 {
	ids := make([]int64, 0, len(s.articles))
	for id := range s.articles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedIDs is sortedArticleIDs generalized to the join collections.
func sortedIDs[T any](m map[int64]*T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// copyArticle returns a defensive copy, including slice fields, so a caller
// can't mutate stored state through a returned entity.
func copyArticle(a *entity.Article) *entity.Article {
	cp := *a
	cp.AstroGlyphs = append([]entity.AstroGlyph(nil), a.AstroGlyphs...)
	cp.Hashtags = append([]string(nil), a.Hashtags...)
	cp.ActorIDs = append([]int64(nil), a.ActorIDs...)
	return &cp
}

func copyActor(a *entity.Actor) *entity.Actor {
	cp := *a
	return &cp
}

func copyCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

// details assembles the composite view for an article: its category
// (asserted present) and its actors in ActorIDs order, with dangling actor
// ids dropped by omission. Callers must hold at least the read lock.
func (s *Store) details(a *entity.Article) (repository.ArticleWithDetails, error) {
	cat, ok := s.categories[a.CategoryID]
	if !ok {
		return repository.ArticleWithDetails{},
			fmt.Errorf("article %d references category %d: %w", a.ID, a.CategoryID, entity.ErrDanglingCategory)
	}
	actors := make([]*entity.Actor, 0, len(a.ActorIDs))
	for _, id := range a.ActorIDs {
		if actor, ok := s.actors[id]; ok {
			actors = append(actors, copyActor(actor))
		}
	}
	return repository.ArticleWithDetails{
		Article:  copyArticle(a),
		Category: copyCategory(cat),
		Actors:   actors,
	}, nil
}
