package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/handler/http/respond"
	artUC "astrobuzz/internal/usecase/article"
)

type createRequest struct {
	Title         string              `json:"title" example:"Mercury Stations Direct"`
	Summary       string              `json:"summary" example:"The retrograde is over."`
	Content       string              `json:"content"`
	CategoryID    int64               `json:"categoryId" example:"2"`
	PublishedAt   time.Time           `json:"publishedAt"`
	AstroAnalysis string              `json:"astroAnalysis"`
	AstroGlyphs   []entity.AstroGlyph `json:"astroGlyphs"`
	Hashtags      []string            `json:"hashtags"`
	ActorIDs      []int64             `json:"actorIds"`
	IsCelebrity   bool                `json:"isCelebrity"`
}

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP stores a new article.
// @Summary      Create article
// @Description  Stores a new article and returns it as a composite view
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Article fields"
// @Success      201 {object} DTO "Created article"
// @Failure      400 {string} string "Malformed request or validation failure"
// @Failure      500 {string} string "Server error"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		CategoryID:    req.CategoryID,
		PublishedAt:   req.PublishedAt,
		AstroAnalysis: req.AstroAnalysis,
		AstroGlyphs:   req.AstroGlyphs,
		Hashtags:      req.Hashtags,
		ActorIDs:      req.ActorIDs,
		IsCelebrity:   req.IsCelebrity,
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

	// Return the same composite shape the read paths use
	view, err := h.Svc.Get(r.Context(), art.ID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, NewDTO(*view))
}
