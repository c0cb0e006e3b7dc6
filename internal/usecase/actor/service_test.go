package actor_test

import (
	"context"
	"errors"
	"testing"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
	actorUC "astrobuzz/internal/usecase/actor"
)

// Minimal in-memory ActorRepository stub with canned relationship results.
type stubActorRepo struct {
	data   map[int64]*entity.Actor
	rels   map[int64][]repository.ActorRelationship
	nextID int64
	err    error
}

func newActorStub() *stubActorRepo {
	return &stubActorRepo{
		data:   map[int64]*entity.Actor{},
		rels:   map[int64][]repository.ActorRelationship{},
		nextID: 1,
	}
}

func (s *stubActorRepo) List(_ context.Context) ([]*entity.Actor, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Actor
	for _, a := range s.data {
		out = append(out, a)
	}
	return out, nil
}

func (s *stubActorRepo) Get(_ context.Context, id int64) (*entity.Actor, error) {
	return s.data[id], s.err
}

func (s *stubActorRepo) GetBySlug(_ context.Context, slug string) (*entity.Actor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubActorRepo) Create(_ context.Context, in repository.CreateActorInput) (*entity.Actor, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := &entity.Actor{ID: s.nextID, Name: in.Name, Slug: in.Slug, Category: in.Category}
	s.nextID++
	s.data[a.ID] = a
	return a, nil
}

func (s *stubActorRepo) Relationships(_ context.Context, actorID int64) ([]repository.ActorRelationship, error) {
	return s.rels[actorID], s.err
}

// Article stub exposing only the ByActor path the actor service uses.
type stubArticleRepo struct {
	byActor map[int64][]repository.ArticleWithDetails
	err     error
}

func (s *stubArticleRepo) List(_ context.Context, _ repository.ArticleFilter) ([]repository.ArticleWithDetails, error) {
	return nil, s.err
}
func (s *stubArticleRepo) Get(_ context.Context, _ int64) (*repository.ArticleWithDetails, error) {
	return nil, s.err
}
func (s *stubArticleRepo) Create(_ context.Context, _ repository.CreateArticleInput) (*entity.Article, error) {
	return nil, s.err
}
func (s *stubArticleRepo) Search(_ context.Context, _ string) ([]repository.ArticleWithDetails, error) {
	return nil, s.err
}
func (s *stubArticleRepo) ByHashtag(_ context.Context, _ string) ([]repository.ArticleWithDetails, error) {
	return nil, s.err
}
func (s *stubArticleRepo) ByActor(_ context.Context, actorID int64) ([]repository.ArticleWithDetails, error) {
	return s.byActor[actorID], s.err
}
func (s *stubArticleRepo) Count(_ context.Context, _ string) (int64, error) {
	return 0, s.err
}
func (s *stubArticleRepo) IncrementLike(_ context.Context, _ int64) (*entity.Article, error) {
	return nil, s.err
}
func (s *stubArticleRepo) IncrementShare(_ context.Context, _ int64) (*entity.Article, error) {
	return nil, s.err
}

/* ───────── Get / GetBySlug ───────── */

func TestService_Get(t *testing.T) {
	stub := newActorStub()
	stub.data[1] = &entity.Actor{ID: 1, Name: "Taylor Swift", Slug: "taylor-swift"}
	svc := actorUC.Service{Repo: stub}

	got, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Name != "Taylor Swift" {
		t.Fatalf("want Taylor Swift, got %q", got.Name)
	}
}

func TestService_Get_notFound(t *testing.T) {
	svc := actorUC.Service{Repo: newActorStub()}

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, actorUC.ErrActorNotFound) {
		t.Fatalf("want ErrActorNotFound, got %v", err)
	}
}

func TestService_Get_invalidID(t *testing.T) {
	svc := actorUC.Service{Repo: newActorStub()}

	_, err := svc.Get(context.Background(), 0)
	if !errors.Is(err, actorUC.ErrInvalidActorID) {
		t.Fatalf("want ErrInvalidActorID, got %v", err)
	}
}

func TestService_GetBySlug(t *testing.T) {
	stub := newActorStub()
	stub.data[1] = &entity.Actor{ID: 1, Name: "Beyoncé", Slug: "beyonce"}
	svc := actorUC.Service{Repo: stub}

	got, err := svc.GetBySlug(context.Background(), "beyonce")
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if got.ID != 1 {
		t.Fatalf("want id 1, got %d", got.ID)
	}

	if _, err := svc.GetBySlug(context.Background(), "nobody"); !errors.Is(err, actorUC.ErrActorNotFound) {
		t.Fatalf("want ErrActorNotFound, got %v", err)
	}
}

/* ───────── Create validation ───────── */

func TestService_Create_validation(t *testing.T) {
	svc := actorUC.Service{Repo: newActorStub()}

	tests := []struct {
		name string
		in   repository.CreateActorInput
	}{
		{"missing name", repository.CreateActorInput{Slug: "x"}},
		{"empty slug", repository.CreateActorInput{Name: "X"}},
		{"uppercase slug", repository.CreateActorInput{Name: "X", Slug: "Bad-Slug"}},
		{"spaces in slug", repository.CreateActorInput{Name: "X", Slug: "bad slug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.in); err == nil {
				t.Fatalf("want validation error, got nil")
			}
		})
	}
}

func TestService_Create_success(t *testing.T) {
	stub := newActorStub()
	svc := actorUC.Service{Repo: stub}

	got, err := svc.Create(context.Background(), repository.CreateActorInput{
		Name: "Elon Musk", Slug: "elon-musk", Category: "Tech",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID != 1 {
		t.Fatalf("want id 1, got %d", got.ID)
	}
}

/* ───────── ArticlesByActor ───────── */

func TestService_ArticlesByActor(t *testing.T) {
	arts := &stubArticleRepo{byActor: map[int64][]repository.ArticleWithDetails{
		1: {{Article: &entity.Article{ID: 10, Title: "t"}}},
	}}
	svc := actorUC.Service{Repo: newActorStub(), Articles: arts}

	got, err := svc.ArticlesByActor(context.Background(), 1)
	if err != nil {
		t.Fatalf("ArticlesByActor err=%v", err)
	}
	if len(got) != 1 || got[0].Article.ID != 10 {
		t.Fatalf("unexpected result: %+v", got)
	}

	// no articles is an empty list, not an error
	empty, err := svc.ArticlesByActor(context.Background(), 2)
	if err != nil {
		t.Fatalf("ArticlesByActor err=%v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("want empty, got %d", len(empty))
	}

	if _, err := svc.ArticlesByActor(context.Background(), -1); !errors.Is(err, actorUC.ErrInvalidActorID) {
		t.Fatalf("want ErrInvalidActorID, got %v", err)
	}
}

/* ───────── Relationships ───────── */

func TestService_Relationships(t *testing.T) {
	stub := newActorStub()
	stub.data[1] = &entity.Actor{ID: 1, Name: "A", Slug: "a"}
	stub.data[2] = &entity.Actor{ID: 2, Name: "B", Slug: "b"}
	stub.rels[1] = []repository.ActorRelationship{
		{Actor: stub.data[2], SharedArticles: 3},
	}
	svc := actorUC.Service{Repo: stub}

	got, err := svc.Relationships(context.Background(), 1)
	if err != nil {
		t.Fatalf("Relationships err=%v", err)
	}
	if len(got) != 1 || got[0].SharedArticles != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestService_Relationships_actorMissing(t *testing.T) {
	svc := actorUC.Service{Repo: newActorStub()}

	_, err := svc.Relationships(context.Background(), 7)
	if !errors.Is(err, actorUC.ErrActorNotFound) {
		t.Fatalf("want ErrActorNotFound, got %v", err)
	}
}
