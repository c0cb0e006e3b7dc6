package article

import (
	"log/slog"
	"net/http"

	"astrobuzz/internal/common/pagination"
	artUC "astrobuzz/internal/usecase/article"
)

// Register registers the article routes with the given mux.
// Reads are public; the engagement posts are too, the counters are
// anonymous. Auth enforcement for account-scoped routes happens in the
// outer middleware chain.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /articles/{id}", GetHandler{svc})
	mux.Handle("POST /articles", CreateHandler{svc})
	mux.Handle("POST /articles/{id}/like", LikeHandler{svc})
	mux.Handle("POST /articles/{id}/share", ShareHandler{svc})

	mux.Handle("GET /search", SearchHandler{svc})
	mux.Handle("GET /hashtags/{tag}/articles", HashtagHandler{svc})
}
