// Package logging wraps log/slog with the conventions the API uses
// everywhere: JSON output to stdout, LOG_LEVEL control, request-id
// enrichment and context propagation.
//
// The server builds one logger in main and stores it on each request
// context; handlers pull it back out and enrich it:
//
//	logger := logging.NewLogger()
//	logger.Info("server started", slog.String("addr", ":8080"))
//
//	func handle(ctx context.Context) {
//	    l := logging.WithRequestID(ctx, logging.FromContext(ctx))
//	    l.Info("bookmark added", slog.Int64("article_id", id))
//	}
package logging
