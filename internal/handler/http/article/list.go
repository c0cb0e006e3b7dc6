package article

import (
	"log/slog"
	"net/http"
	"time"

	"astrobuzz/internal/common/pagination"
	"astrobuzz/internal/handler/http/requestid"
	"astrobuzz/internal/handler/http/respond"
	"astrobuzz/internal/observability/logging"
	artUC "astrobuzz/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns the paginated article feed, newest first.
// @Summary      List articles
// @Description  Returns articles newest first, optionally filtered by category slug. "top", an empty value and an unknown slug all yield the unfiltered feed.
// @Tags         articles
// @Produce      json
// @Param        category query string false "Category slug" example(celebrity)
// @Param        limit    query int    false "Page size" default(20) minimum(1) maximum(100)
// @Param        offset   query int    false "Items to skip" default(0) minimum(0)
// @Success      200 {object} pagination.Response[DTO] "Paginated article feed"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "Server error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	categorySlug := r.URL.Query().Get("category")

	logger.Info("article feed request",
		"category", categorySlug,
		"limit", params.Limit,
		"offset", params.Offset,
		"request_id", reqID)

	result, err := h.Svc.List(ctx, categorySlug, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"category", categorySlug,
			"limit", params.Limit,
			"offset", params.Offset,
			"request_id", reqID)
		pagination.RecordError("store")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := NewDTOs(result.Data)
	response := pagination.NewResponse(dtos, result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Offset)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("article feed response",
		"category", categorySlug,
		"limit", params.Limit,
		"offset", params.Offset,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
