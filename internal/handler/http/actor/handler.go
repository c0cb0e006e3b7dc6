// Package actor provides HTTP handlers for actor endpoints: the roster,
// id-or-slug profile lookup, an actor's article feed and the inferred
// relationship list.
package actor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/handler/http/article"
	"astrobuzz/internal/handler/http/respond"
	"astrobuzz/internal/repository"
	actUC "astrobuzz/internal/usecase/actor"
)

// DTO represents the JSON structure for actor data transfer.
type DTO struct {
	ID           int64   `json:"id" example:"3"`
	Name         string  `json:"name" example:"Beyoncé"`
	Slug         string  `json:"slug" example:"beyonce"`
	Category     string  `json:"category" example:"music"`
	SunSign      *string `json:"sunSign,omitempty" example:"Virgo"`
	MoonSign     *string `json:"moonSign,omitempty" example:"Scorpio"`
	RisingSign   *string `json:"risingSign,omitempty" example:"Libra"`
	ProfileImage *string `json:"profileImage,omitempty" example:"https://cdn.example.com/beyonce.jpg"`
}

// RelationshipDTO pairs a related actor with the number of shared articles.
type RelationshipDTO struct {
	Actor          DTO `json:"actor"`
	SharedArticles int `json:"sharedArticles" example:"3"`
}

// NewDTO maps an actor entity to its wire shape.
func NewDTO(a *entity.Actor) DTO {
	return DTO{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Category:     a.Category,
		SunSign:      a.SunSign,
		MoonSign:     a.MoonSign,
		RisingSign:   a.RisingSign,
		ProfileImage: a.ProfileImage,
	}
}

type ListHandler struct{ Svc *actUC.Service }

// ServeHTTP lists every actor.
// @Summary      List actors
// @Description  Returns all actor profiles
// @Tags         actors
// @Produce      json
// @Success      200 {array} DTO "Actor roster"
// @Failure      500 {string} string "Server error"
// @Router       /actors [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actors, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(actors))
	for _, a := range actors {
		out = append(out, NewDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetHandler struct{ Svc *actUC.Service }

// ServeHTTP returns one actor by numeric id or slug.
// @Summary      Get actor
// @Description  Looks the actor up by numeric id when the identifier parses as one, by slug otherwise
// @Tags         actors
// @Produce      json
// @Param        identifier path string true "Actor id or slug" example(beyonce)
// @Success      200 {object} DTO "Actor profile"
// @Failure      404 {string} string "Actor not found"
// @Failure      500 {string} string "Server error"
// @Router       /actors/{identifier} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	var (
		actor *entity.Actor
		err   error
	)
	if id, perr := strconv.ParseInt(identifier, 10, 64); perr == nil {
		actor, err = h.Svc.Get(r.Context(), id)
	} else {
		actor, err = h.Svc.GetBySlug(r.Context(), identifier)
	}
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, actUC.ErrActorNotFound) || errors.Is(err, actUC.ErrInvalidActorID) {
			// A non-positive numeric identifier names no actor either
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, NewDTO(actor))
}

type ArticlesHandler struct{ Svc *actUC.Service }

// ServeHTTP returns every article the actor appears in.
// @Summary      Actor articles
// @Description  Returns the articles listing the actor, as composite views. An actor with no articles yields an empty list.
// @Tags         actors
// @Produce      json
// @Param        id path int true "Actor id"
// @Success      200 {array} article.DTO "Articles featuring the actor"
// @Failure      400 {string} string "Invalid actor id"
// @Failure      500 {string} string "Server error"
// @Router       /actors/{id}/articles [get]
func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, actUC.ErrInvalidActorID)
		return
	}

	views, err := h.Svc.ArticlesByActor(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, actUC.ErrInvalidActorID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, article.NewDTOs(views))
}

type RelationshipsHandler struct{ Svc *actUC.Service }

// ServeHTTP returns the actor's inferred relationships.
// @Summary      Actor relationships
// @Description  Related people inferred from article co-appearances: actors sharing at least two articles, most shared first
// @Tags         actors
// @Produce      json
// @Param        id path int true "Actor id"
// @Success      200 {array} RelationshipDTO "Related actors"
// @Failure      400 {string} string "Invalid actor id"
// @Failure      404 {string} string "Actor not found"
// @Failure      500 {string} string "Server error"
// @Router       /actors/{id}/relationships [get]
func (h RelationshipsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, actUC.ErrInvalidActorID)
		return
	}

	rels, err := h.Svc.Relationships(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, actUC.ErrInvalidActorID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, actUC.ErrActorNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := make([]RelationshipDTO, 0, len(rels))
	for _, rel := range rels {
		out = append(out, RelationshipDTO{
			Actor:          NewDTO(rel.Actor),
			SharedArticles: rel.SharedArticles,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

type createRequest struct {
	Name         string  `json:"name" example:"Beyoncé"`
	Slug         string  `json:"slug" example:"beyonce"`
	Category     string  `json:"category" example:"music"`
	SunSign      *string `json:"sunSign"`
	MoonSign     *string `json:"moonSign"`
	RisingSign   *string `json:"risingSign"`
	ProfileImage *string `json:"profileImage"`
}

type CreateHandler struct{ Svc *actUC.Service }

// ServeHTTP stores a new actor.
// @Summary      Create actor
// @Description  Stores a new actor profile with a unique URL-safe slug
// @Tags         actors
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Actor fields"
// @Success      201 {object} DTO "Created actor"
// @Failure      400 {string} string "Malformed request or validation failure"
// @Failure      500 {string} string "Server error"
// @Router       /actors [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	actor, err := h.Svc.Create(r.Context(), repository.CreateActorInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Category:     req.Category,
		SunSign:      req.SunSign,
		MoonSign:     req.MoonSign,
		RisingSign:   req.RisingSign,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, NewDTO(actor))
}

// Register registers the actor routes with the given mux.
func Register(mux *http.ServeMux, svc *actUC.Service) {
	mux.Handle("GET /actors", ListHandler{svc})
	mux.Handle("POST /actors", CreateHandler{svc})
	mux.Handle("GET /actors/{identifier}", GetHandler{svc})
	mux.Handle("GET /actors/{id}/articles", ArticlesHandler{svc})
	mux.Handle("GET /actors/{id}/relationships", RelationshipsHandler{svc})
}
