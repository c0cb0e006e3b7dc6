package article_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"astrobuzz/internal/handler/http/article"
	artUC "astrobuzz/internal/usecase/article"
)

func TestGetHandler_Success(t *testing.T) {
	stub := newStub()
	seedStub(stub, "Mercury Stations Direct")

	handler := article.GetHandler{Svc: &artUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/articles/1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200; body: %s", rr.Code, rr.Body.String())
	}

	var dto article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dto.ID != 1 {
		t.Errorf("ID = %d, want 1", dto.ID)
	}
	if dto.Title != "Mercury Stations Direct" {
		t.Errorf("Title = %q, want %q", dto.Title, "Mercury Stations Direct")
	}
	if dto.Category.Name != "Celebrity" {
		t.Errorf("Category.Name = %q, want Celebrity", dto.Category.Name)
	}
	if len(dto.Hashtags) != 1 || dto.Hashtags[0] != "#eclipse" {
		t.Errorf("Hashtags = %v, want [#eclipse]", dto.Hashtags)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	handler := article.GetHandler{Svc: &artUC.Service{Repo: newStub()}}

	req := httptest.NewRequest(http.MethodGet, "/articles/99", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want 404", rr.Code)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	handler := article.GetHandler{Svc: &artUC.Service{Repo: newStub()}}

	for _, path := range []string{"/articles/abc", "/articles/0", "/articles/-5"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status code = %d, want 400", path, rr.Code)
		}
	}
}
