package article_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"astrobuzz/internal/common/pagination"
	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/handler/http/article"
	"astrobuzz/internal/repository"
	artUC "astrobuzz/internal/usecase/article"
)

/* ───────── stub repository ───────── */

type stubRepo struct {
	data         map[int64]*entity.Article
	nextID       int64
	lastCategory string
	err          error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) view(a *entity.Article) repository.ArticleWithDetails {
	return repository.ArticleWithDetails{
		Article:  a,
		Category: &entity.Category{ID: a.CategoryID, Name: "Celebrity", Slug: "celebrity"},
		Actors:   []*entity.Actor{{ID: 3, Name: "Beyoncé", Slug: "beyonce", Category: "music"}},
	}
}

func (s *stubRepo) sorted() []repository.ArticleWithDetails {
	out := make([]repository.ArticleWithDetails, 0, len(s.data))
	for id := int64(1); id < s.nextID; id++ {
		if a, ok := s.data[id]; ok {
			out = append(out, s.view(a))
		}
	}
	return out
}

func (s *stubRepo) List(_ context.Context, filter repository.ArticleFilter) ([]repository.ArticleWithDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastCategory = filter.CategorySlug
	out := s.sorted()
	if filter.Offset >= len(out) {
		return []repository.ArticleWithDetails{}, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[filter.Offset:end], nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*repository.ArticleWithDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	v := s.view(a)
	return &v, nil
}

func (s *stubRepo) Create(_ context.Context, in repository.CreateArticleInput) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	published := in.PublishedAt
	if published.IsZero() {
		published = time.Now()
	}
	a := &entity.Article{
		ID:          s.nextID,
		Title:       in.Title,
		Summary:     in.Summary,
		Content:     in.Content,
		CategoryID:  in.CategoryID,
		PublishedAt: published,
		AstroGlyphs: in.AstroGlyphs,
		Hashtags:    in.Hashtags,
		ActorIDs:    in.ActorIDs,
		IsCelebrity: in.IsCelebrity,
	}
	s.nextID++
	s.data[a.ID] = a
	return a, nil
}

func (s *stubRepo) Search(_ context.Context, query string) ([]repository.ArticleWithDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []repository.ArticleWithDetails{}
	for _, v := range s.sorted() {
		if v.Article.MatchesQuery(query) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) ByHashtag(_ context.Context, tag string) ([]repository.ArticleWithDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []repository.ArticleWithDetails{}
	for _, v := range s.sorted() {
		if v.Article.HasHashtag(tag) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) ByActor(_ context.Context, actorID int64) ([]repository.ArticleWithDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []repository.ArticleWithDetails{}
	for _, v := range s.sorted() {
		if v.Article.HasActor(actorID) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, _ string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.data)), nil
}

func (s *stubRepo) IncrementLike(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	a.LikeCount++
	return a, nil
}

func (s *stubRepo) IncrementShare(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	a.ShareCount++
	return a, nil
}

func seedStub(s *stubRepo, titles ...string) {
	for _, title := range titles {
		_, _ = s.Create(context.Background(), repository.CreateArticleInput{
			Title:      title,
			Summary:    "s",
			CategoryID: 2,
			Hashtags:   []string{"#eclipse"},
			ActorIDs:   []int64{3},
		})
	}
}

func newListHandler(stub *stubRepo) article.ListHandler {
	return article.ListHandler{
		Svc:           &artUC.Service{Repo: stub},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.Default(),
	}
}

/* ───────── list ───────── */

func TestListHandler_Success(t *testing.T) {
	stub := newStub()
	seedStub(stub, "Mercury Stations Direct", "Venus Enters Libra")

	handler := newListHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var result pagination.Response[article.DTO]
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(result.Data) != 2 {
		t.Fatalf("data length = %d, want 2", len(result.Data))
	}
	if result.Data[0].Title != "Mercury Stations Direct" {
		t.Errorf("data[0].Title = %q, want %q", result.Data[0].Title, "Mercury Stations Direct")
	}
	if result.Data[0].Category.Slug != "celebrity" {
		t.Errorf("data[0].Category.Slug = %q, want celebrity", result.Data[0].Category.Slug)
	}
	if len(result.Data[0].Actors) != 1 || result.Data[0].Actors[0].Slug != "beyonce" {
		t.Errorf("data[0].Actors = %+v, want the resolved actor", result.Data[0].Actors)
	}
	if result.Pagination.Total != 2 {
		t.Errorf("pagination total = %d, want 2", result.Pagination.Total)
	}
	if result.Pagination.Limit != 20 || result.Pagination.Offset != 0 {
		t.Errorf("pagination defaults = %+v, want limit 20 offset 0", result.Pagination)
	}
}

func TestListHandler_CategoryFilter(t *testing.T) {
	stub := newStub()
	seedStub(stub, "a")

	handler := newListHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/articles?category=celebrity", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", rr.Code)
	}
	if stub.lastCategory != "celebrity" {
		t.Errorf("category passed to repository = %q, want celebrity", stub.lastCategory)
	}
}

func TestListHandler_Pagination(t *testing.T) {
	stub := newStub()
	seedStub(stub, "a", "b", "c", "d", "e")

	handler := newListHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/articles?limit=2&offset=2", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", rr.Code)
	}

	var result pagination.Response[article.DTO]
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("data length = %d, want 2", len(result.Data))
	}
	if result.Data[0].Title != "c" {
		t.Errorf("data[0].Title = %q, want c", result.Data[0].Title)
	}
	if result.Pagination.Total != 5 || result.Pagination.Offset != 2 {
		t.Errorf("pagination = %+v, want total 5 offset 2", result.Pagination)
	}
}

func TestListHandler_InvalidParams(t *testing.T) {
	handler := newListHandler(newStub())

	for _, query := range []string{"?limit=0", "?limit=101", "?limit=abc", "?offset=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/articles"+query, nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status code = %d, want 400", query, rr.Code)
		}
	}
}

func TestListHandler_RepoError(t *testing.T) {
	stub := newStub()
	stub.err = context.DeadlineExceeded

	handler := newListHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want 500", rr.Code)
	}
}

func TestListHandler_EmptyFeed(t *testing.T) {
	handler := newListHandler(newStub())

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", rr.Code)
	}

	var result pagination.Response[article.DTO]
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Data == nil {
		t.Error("data should serialize as an empty array, not null")
	}
	if len(result.Data) != 0 {
		t.Errorf("data length = %d, want 0", len(result.Data))
	}
}
