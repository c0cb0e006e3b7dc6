package article

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"astrobuzz/internal/domain/entity"
	httph "astrobuzz/internal/handler/http"
	"astrobuzz/internal/handler/http/pathutil"
	"astrobuzz/internal/handler/http/respond"
	artUC "astrobuzz/internal/usecase/article"
)

// LikeHandler bumps an article's like counter.
type LikeHandler struct{ Svc *artUC.Service }

// ServeHTTP records a like.
// @Summary      Like article
// @Description  Increments the article's like counter and returns the updated counts
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article id"
// @Success      200 {object} EngagementDTO "Updated counters"
// @Failure      400 {string} string "Invalid article id"
// @Failure      404 {string} string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/like [post]
func (h LikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveEngagement(w, r, "like", h.Svc.Like)
}

// ShareHandler bumps an article's share counter.
type ShareHandler struct{ Svc *artUC.Service }

// ServeHTTP records a share.
// @Summary      Share article
// @Description  Increments the article's share counter and returns the updated counts
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article id"
// @Success      200 {object} EngagementDTO "Updated counters"
// @Failure      400 {string} string "Invalid article id"
// @Failure      404 {string} string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/share [post]
func (h ShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveEngagement(w, r, "share", h.Svc.Share)
}

func serveEngagement(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	op func(context.Context, int64) (*entity.Article, error),
) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.SafeError(w, http.StatusBadRequest, pathutil.ErrInvalidID)
		return
	}

	art, err := op(r.Context(), id)
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

	httph.RecordEngagement(action)
	respond.JSON(w, http.StatusOK, EngagementDTO{
		ID:         art.ID,
		LikeCount:  art.LikeCount,
		ShareCount: art.ShareCount,
	})
}
