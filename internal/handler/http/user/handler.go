// Package user provides HTTP handlers for the authenticated /me surface:
// bookmark management and actor/hashtag follows. Every handler requires an
// identity established by the authorization middleware.
package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"astrobuzz/internal/handler/http/actor"
	"astrobuzz/internal/handler/http/article"
	"astrobuzz/internal/handler/http/auth"
	"astrobuzz/internal/handler/http/respond"
	userUC "astrobuzz/internal/usecase/user"
)

// errUnauthenticated is what a /me handler reports when no identity was
// attached to the request context.
var errUnauthenticated = errors.New("authentication required")

// BookmarkDTO represents the JSON structure of a saved-article record.
type BookmarkDTO struct {
	ID        int64     `json:"id" example:"1"`
	ArticleID int64     `json:"articleId" example:"42"`
	CreatedAt time.Time `json:"createdAt"`
}

// FollowDTO represents the JSON structure of a follow record. Exactly one
// of ActorID and Hashtag is present.
type FollowDTO struct {
	ID        int64     `json:"id" example:"1"`
	ActorID   *int64    `json:"actorId,omitempty" example:"3"`
	Hashtag   *string   `json:"hashtag,omitempty" example:"#MercuryRetrograde"`
	CreatedAt time.Time `json:"createdAt"`
}

// FollowingDTO partitions the user's follows into actor profiles and
// hashtag strings.
type FollowingDTO struct {
	Actors   []actor.DTO `json:"actors"`
	Hashtags []string    `json:"hashtags"`
}

// userID extracts the authenticated account id, writing a 401 when the
// middleware attached none.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := auth.UserID(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errUnauthenticated)
		return 0, false
	}
	return uid, true
}

/* ───────── bookmarks ───────── */

type BookmarksHandler struct{ Svc *userUC.Service }

// ServeHTTP lists the caller's bookmarked articles as composite views.
// @Summary      List bookmarks
// @Description  Returns the authenticated user's saved articles in bookmark order
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} article.DTO "Bookmarked articles"
// @Failure      401 {string} string "Missing or invalid token"
// @Failure      500 {string} string "Server error"
// @Router       /me/bookmarks [get]
func (h BookmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	views, err := h.Svc.Bookmarks(r.Context(), uid)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, article.NewDTOs(views))
}

type bookmarkRequest struct {
	ArticleID int64 `json:"articleId" example:"42"`
}

type AddBookmarkHandler struct{ Svc *userUC.Service }

// ServeHTTP saves an article for the caller. Re-saving an already
// bookmarked article returns the existing record.
// @Summary      Add bookmark
// @Description  Saves an article to the authenticated user's bookmarks
// @Tags         me
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body bookmarkRequest true "Article to save"
// @Success      201 {object} BookmarkDTO "Bookmark record"
// @Failure      400 {string} string "Malformed request"
// @Failure      401 {string} string "Missing or invalid token"
// @Failure      404 {string} string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /me/bookmarks [post]
func (h AddBookmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req bookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	b, err := h.Svc.Bookmark(r.Context(), uid, req.ArticleID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, BookmarkDTO{
		ID:        b.ID,
		ArticleID: b.ArticleID,
		CreatedAt: b.CreatedAt,
	})
}

type RemoveBookmarkHandler struct{ Svc *userUC.Service }

// ServeHTTP removes the caller's bookmark of the article. Removing an
// absent bookmark still succeeds.
// @Summary      Remove bookmark
// @Description  Deletes the authenticated user's bookmark of the article, if any
// @Tags         me
// @Security     BearerAuth
// @Param        id path int true "Article id"
// @Success      204 {string} string "Bookmark removed"
// @Failure      400 {string} string "Invalid article id"
// @Failure      401 {string} string "Missing or invalid token"
// @Failure      500 {string} string "Server error"
// @Router       /me/bookmarks/{id} [delete]
func (h RemoveBookmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	articleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || articleID <= 0 {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid article id"))
		return
	}

	if err := h.Svc.RemoveBookmark(r.Context(), uid, articleID); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* ───────── follows ───────── */

type FollowingHandler struct{ Svc *userUC.Service }

// ServeHTTP returns what the caller follows, partitioned into actors and
// hashtags. Both lists are present even when empty.
// @Summary      List follows
// @Description  Returns the authenticated user's followed actors and hashtags
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} FollowingDTO "Followed actors and hashtags"
// @Failure      401 {string} string "Missing or invalid token"
// @Failure      500 {string} string "Server error"
// @Router       /me/following [get]
func (h FollowingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	f, err := h.Svc.Following(r.Context(), uid)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := FollowingDTO{
		Actors:   make([]actor.DTO, 0, len(f.Actors)),
		Hashtags: f.Hashtags,
	}
	for _, a := range f.Actors {
		out.Actors = append(out.Actors, actor.NewDTO(a))
	}
	if out.Hashtags == nil {
		out.Hashtags = []string{}
	}
	respond.JSON(w, http.StatusOK, out)
}

type followRequest struct {
	ActorID int64  `json:"actorId" example:"3"`
	Hashtag string `json:"hashtag" example:"#MercuryRetrograde"`
}

type FollowHandler struct{ Svc *userUC.Service }

// ServeHTTP records a follow of an actor or a hashtag. Exactly one of
// actorId and hashtag must be set.
// @Summary      Follow
// @Description  Follows an actor (actorId) or a hashtag topic (hashtag); exactly one must be set
// @Tags         me
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body followRequest true "Follow target"
// @Success      201 {object} FollowDTO "Follow record"
// @Failure      400 {string} string "Malformed request or ambiguous target"
// @Failure      401 {string} string "Missing or invalid token"
// @Failure      500 {string} string "Server error"
// @Router       /me/follows [post]
func (h FollowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	f, err := h.Svc.Follow(r.Context(), uid, req.ActorID, req.Hashtag)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrInvalidFollowTarget) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, FollowDTO{
		ID:        f.ID,
		ActorID:   f.ActorID,
		Hashtag:   f.Hashtag,
		CreatedAt: f.CreatedAt,
	})
}

type UnfollowHandler struct{ Svc *userUC.Service }

// ServeHTTP removes a follow matching the given discriminator.
// @Summary      Unfollow
// @Description  Removes the caller's follow of the given actor or hashtag; exactly one must be set
// @Tags         me
// @Accept       json
// @Security     BearerAuth
// @Param        request body followRequest true "Target to unfollow"
// @Success      204 {string} string "Follow removed"
// @Failure      400 {string} string "Malformed request or ambiguous target"
// @Failure      401 {string} string "Missing or invalid token"
// @Failure      500 {string} string "Server error"
// @Router       /me/follows [delete]
func (h UnfollowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.Unfollow(r.Context(), uid, req.ActorID, req.Hashtag); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrInvalidFollowTarget) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Register registers the authenticated /me routes with the given mux.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("GET /me/bookmarks", BookmarksHandler{svc})
	mux.Handle("POST /me/bookmarks", AddBookmarkHandler{svc})
	mux.Handle("DELETE /me/bookmarks/{id}", RemoveBookmarkHandler{svc})
	mux.Handle("GET /me/following", FollowingHandler{svc})
	mux.Handle("POST /me/follows", FollowHandler{svc})
	mux.Handle("DELETE /me/follows", UnfollowHandler{svc})
}
