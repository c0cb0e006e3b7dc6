package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"astrobuzz/internal/common/pagination"
	appconfig "astrobuzz/internal/config"
	"astrobuzz/internal/infra/adapter/persistence/memory"
	"astrobuzz/internal/observability/logging"
	obsmetrics "astrobuzz/internal/observability/metrics"
	"astrobuzz/internal/observability/slo"
	"astrobuzz/internal/observability/tracing"
	envconfig "astrobuzz/internal/pkg/config"
	pkgconfig "astrobuzz/pkg/config"

	actUC "astrobuzz/internal/usecase/actor"
	artUC "astrobuzz/internal/usecase/article"
	catUC "astrobuzz/internal/usecase/category"
	userUC "astrobuzz/internal/usecase/user"

	hhttp "astrobuzz/internal/handler/http"
	hactor "astrobuzz/internal/handler/http/actor"
	harticle "astrobuzz/internal/handler/http/article"
	hauth "astrobuzz/internal/handler/http/auth"
	hcategory "astrobuzz/internal/handler/http/category"
	"astrobuzz/internal/handler/http/requestid"
	huser "astrobuzz/internal/handler/http/user"
	authservice "astrobuzz/internal/service/auth"

	_ "astrobuzz/docs" // swagger docs
)

// @title           AstroBuzz API
// @version         1.0
// @description     REST API for the AstroBuzz astrology-news app.
// @description     Serves celebrity news articles with astrological context, actor profiles with co-appearance relationships, and per-account bookmarks and follows.

// @contact.name   API Support
// @contact.url    https://github.com/astrobuzz/astrobuzz
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication for account-scoped routes. Pass "Bearer {token}" in the Authorization header.

func main() {
	logger := initLogger()
	validateJWTSecret(logger)

	version := getVersion()
	store := memory.NewSeeded()
	logger.Info("content store seeded", slog.Any("counts", store.Counts()))

	components := setupServer(logger, store, version)

	runServer(logger, components, version)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable.
// Tokens are signed with it, so the server refuses to start with a
// missing, short or guessable value.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// Enforce a minimum of 32 characters (256 bits)
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value")
			os.Exit(1)
		}
	}
}

// getVersion returns the application version from the VERSION environment
// variable, or "dev" when unset.
func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// ServerComponents aggregates everything runServer needs.
type ServerComponents struct {
	Handler http.Handler
	Store   *memory.Store
	Cron    *cron.Cron
}

// authSettings is the credential policy the auth stack starts with.
// A SECURITY_CONFIG file overrides the defaults; without one the API
// runs with the built-in protected prefixes.
type authSettings struct {
	MinPasswordLength  int
	ProtectedEndpoints []string
}

// loadAuthSettings resolves the auth policy. When SECURITY_CONFIG names
// a YAML file it must parse and validate; a broken security config is a
// startup failure, not a fallback.
func loadAuthSettings(logger *slog.Logger) authSettings {
	settings := authSettings{
		MinPasswordLength:  8,
		ProtectedEndpoints: hauth.ProtectedEndpoints,
	}

	path := os.Getenv("SECURITY_CONFIG")
	if path == "" {
		return settings
	}

	cfg, err := appconfig.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security config",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.GetAuthProvider() != "store" {
		logger.Error("unsupported auth provider",
			slog.String("provider", cfg.GetAuthProvider()))
		os.Exit(1)
	}

	settings.MinPasswordLength = cfg.GetMinPasswordLength()
	if eps := cfg.GetProtectedEndpoints(); len(eps) > 0 {
		settings.ProtectedEndpoints = eps
	}
	logger.Info("security config loaded",
		slog.String("path", path),
		slog.Int("min_password_length", settings.MinPasswordLength),
		slog.Any("protected_endpoints", settings.ProtectedEndpoints))
	return settings
}

// setupServer wires the store, use cases, HTTP routes, middleware and the
// background metrics refresher.
func setupServer(logger *slog.Logger, store *memory.Store, version string) *ServerComponents {
	artRepo := memory.NewArticleRepo(store)
	actRepo := memory.NewActorRepo(store)
	catRepo := memory.NewCategoryRepo(store)
	userRepo := memory.NewUserRepo(store)
	interRepo := memory.NewInteractionRepo(store)

	artSvc := &artUC.Service{Repo: artRepo}
	actSvc := &actUC.Service{Repo: actRepo, Articles: artRepo}
	catSvc := catUC.Service{Repo: catRepo}
	userSvc := &userUC.Service{Users: userRepo, Interactions: interRepo}

	auth := loadAuthSettings(logger)
	authProvider := hauth.NewStoreAuthProvider(userSvc, auth.MinPasswordLength)
	authService := authservice.NewAuthService(authProvider, auth.ProtectedEndpoints)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", hauth.TokenHandler(authService))
	mux.Handle("POST /auth/register", hauth.RegisterHandler(authService, userSvc))

	mux.Handle("/health", &hhttp.HealthHandler{Store: store, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{Store: store})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	hcategory.Register(mux, catSvc)
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hactor.Register(mux, actSvc)
	huser.Register(mux, userSvc)

	handler := applyMiddleware(logger, mux, authService)

	return &ServerComponents{
		Handler: handler,
		Store:   store,
		Cron:    setupMetricsRefresh(logger, store),
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: Request ID → Tracing → Metrics → Logging →
// Recovery → IP Rate Limit → Security Headers → Body Limit → Input
// Validation → Timeout → Authz.
func applyMiddleware(logger *slog.Logger, handler http.Handler, authService *authservice.AuthService) http.Handler {
	rlCfg := pkgconfig.LoadRateLimitConfig()

	// Applied in reverse order (innermost to outermost).
	chain := handler
	chain = hauth.Authz(authService)(chain)
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.SecurityHeaders()(chain)

	if rlCfg.Enabled {
		limiter := hhttp.NewRateLimiter(rlCfg.RPS, rlCfg.Burst, rlCfg.IdleEviction)
		chain = limiter.Limit(chain)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", rlCfg.RPS),
			slog.Int("burst", rlCfg.Burst),
			slog.Duration("idle_eviction", rlCfg.IdleEviction))
	} else {
		logger.Warn("rate limiting is disabled")
	}

	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// setupMetricsRefresh schedules the periodic refresh of the collection
// gauges and the SLO availability/error-rate gauges. The schedule comes
// from METRICS_REFRESH_SCHEDULE and falls back to once a minute when the
// value is not a valid cron expression.
func setupMetricsRefresh(logger *slog.Logger, store *memory.Store) *cron.Cron {
	configMetrics := envconfig.NewConfigMetrics("api")

	result := envconfig.LoadEnvWithFallback(
		"METRICS_REFRESH_SCHEDULE",
		"* * * * *",
		envconfig.ValidateCronSchedule,
	)
	for _, warning := range result.Warnings {
		logger.Warn("metrics refresh schedule", slog.String("warning", warning))
	}
	configMetrics.RecordLoadTimestamp()
	if result.FallbackApplied {
		configMetrics.RecordFallback("metrics_refresh_schedule", "invalid_value")
	}
	configMetrics.SetFallbackActive("metrics_refresh_schedule", result.FallbackApplied)
	schedule := result.Value.(string)

	refresh := func() {
		counts := store.Counts()
		hhttp.UpdateArticlesTotal(counts["articles"])
		hhttp.UpdateActorsTotal(counts["actors"])
		hhttp.UpdateUsersTotal(counts["users"])
		hhttp.UpdateBookmarksTotal(counts["bookmarks"])
		for collection, n := range counts {
			obsmetrics.UpdateCollectionSize(collection, n)
		}
		if err := slo.ObserveRequests(prometheus.DefaultGatherer); err != nil {
			logger.Warn("slo observation failed", slog.Any("error", err))
		}
	}
	refresh()

	c := cron.New()
	if _, err := c.AddFunc(schedule, refresh); err != nil {
		logger.Error("failed to schedule metrics refresh",
			slog.String("schedule", schedule),
			slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("metrics refresh scheduled", slog.String("schedule", schedule))
	return c
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := pkgconfig.GetEnvString("LISTEN_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	components.Cron.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		cronCtx := components.Cron.Stop()
		<-cronCtx.Done()
		logger.Debug("metrics refresh stopped")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
