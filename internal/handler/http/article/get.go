package article

import (
	"errors"
	"net/http"

	"astrobuzz/internal/handler/http/pathutil"
	"astrobuzz/internal/handler/http/respond"
	artUC "astrobuzz/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article as a composite view.
// @Summary      Get article
// @Description  Returns the article with its category and actors resolved
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article id"
// @Success      200 {object} DTO "Composite article view"
// @Failure      400 {string} string "Invalid article id"
// @Failure      404 {string} string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, NewDTO(*view))
}
