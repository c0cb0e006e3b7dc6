package article

import (
	"errors"
	"net/http"
	"strings"
	"time"

	httph "astrobuzz/internal/handler/http"
	"astrobuzz/internal/handler/http/respond"
	artUC "astrobuzz/internal/usecase/article"
	"astrobuzz/internal/utils/text"
)

// maxQueryRunes bounds free-text queries, counted in Unicode characters
// so accented names and zodiac symbols are not penalized.
const maxQueryRunes = 200

type SearchHandler struct{ Svc *artUC.Service }

// ServeHTTP searches articles by free-text query.
// @Summary      Search articles
// @Description  Case-insensitive substring match against title, summary and hashtags
// @Tags         articles
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200 {array} DTO "Matching articles"
// @Failure      400 {string} string "Missing or empty query"
// @Failure      500 {string} string "Server error"
// @Router       /search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httph.RecordSearchQuery(false)
		respond.SafeError(w, http.StatusBadRequest, errors.New("query parameter q is required"))
		return
	}
	if text.CountRunes(query) > maxQueryRunes {
		httph.RecordSearchQuery(false)
		respond.SafeError(w, http.StatusBadRequest, errors.New("query must not exceed 200 characters"))
		return
	}

	start := time.Now()
	views, err := h.Svc.Search(r.Context(), query)
	httph.RecordStoreQuery("search", time.Since(start))
	if err != nil {
		httph.RecordSearchQuery(false)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	httph.RecordSearchQuery(true)
	respond.JSON(w, http.StatusOK, NewDTOs(views))
}

type HashtagHandler struct{ Svc *artUC.Service }

// ServeHTTP returns the articles carrying a hashtag.
// @Summary      Articles by hashtag
// @Description  Exact, case-insensitive hashtag match; the leading "#" may be omitted
// @Tags         articles
// @Produce      json
// @Param        tag path string true "Hashtag, with or without leading #"
// @Success      200 {array} DTO "Articles carrying the hashtag"
// @Failure      400 {string} string "Missing hashtag"
// @Failure      500 {string} string "Server error"
// @Router       /hashtags/{tag}/articles [get]
func (h HashtagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tag := strings.TrimSpace(r.PathValue("tag"))
	if tag == "" || tag == "#" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("hashtag is required"))
		return
	}

	views, err := h.Svc.ByHashtag(r.Context(), tag)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, NewDTOs(views))
}
