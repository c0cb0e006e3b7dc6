// Package category provides the HTTP handler for the category listing
// endpoint. Categories are seeded and immutable, so listing is the whole
// surface.
package category

import (
	"net/http"

	"astrobuzz/internal/handler/http/respond"
	catUC "astrobuzz/internal/usecase/category"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Celebrity"`
	Slug  string `json:"slug" example:"celebrity"`
	Color string `json:"color" example:"hsl(267, 45%, 51%)"`
	Icon  string `json:"icon" example:"star"`
}

type ListHandler struct{ Svc catUC.Service }

// ServeHTTP lists every category in seed order.
// @Summary      List categories
// @Description  Returns all editorial categories in their seeded order
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO "Category list"
// @Failure      500 {string} string "Server error"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, DTO{
			ID:    c.ID,
			Name:  c.Name,
			Slug:  c.Slug,
			Color: c.Color,
			Icon:  c.Icon,
		})
	}

	respond.JSON(w, http.StatusOK, out)
}

// Register registers the category routes with the given mux.
func Register(mux *http.ServeMux, svc catUC.Service) {
	mux.Handle("GET /categories", ListHandler{svc})
}
