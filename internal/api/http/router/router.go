package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/recommendme-server/internal/api/http/cookie"
	"github.com/dtroode/recommendme-server/internal/api/http/handler"
	"github.com/dtroode/recommendme-server/internal/api/http/middleware"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
	"github.com/dtroode/recommendme-server/internal/validation"
)

// Options holds the transport settings that vary between deployments.
type Options struct {
	CORSOrigins []string
	// RateLimit is requests per minute per client IP. Zero disables limiting.
	RateLimit int
	Cookies   cookie.Policy
}

// Router wires services into the chi route table.
type Router struct {
	queryService          handler.QueryService
	recommendationService handler.RecommendationService
	tokenIssuer           handler.TokenIssuer
	tokenService          middleware.TokenService
	contextManager        model.ContextManager
	registry              *prometheus.Registry
	options               Options
	logger                *logger.Logger
}

// New creates a new Router instance.
func New(
	queryService handler.QueryService,
	recommendationService handler.RecommendationService,
	tokenIssuer handler.TokenIssuer,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		queryService:          queryService,
		recommendationService: recommendationService,
		tokenIssuer:           tokenIssuer,
		tokenService:          tokenService,
		contextManager:        contextManager,
		registry:              registry,
		options:               options,
		logger:                logger,
	}
}

// Register builds the handler tree with global middleware and every route.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.NewLogging(r.logger).Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(middleware.NewMetrics(r.registry).Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.options.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if r.options.RateLimit > 0 {
		mux.Use(httprate.LimitByIP(r.options.RateLimit, time.Minute))
	}

	v := validation.New()
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	queries := handler.NewQuery(r.queryService, r.contextManager, v, r.logger)
	recommendations := handler.NewRecommendation(r.recommendationService, v, r.logger)
	auth := handler.NewAuth(r.tokenIssuer, r.options.Cookies, v, r.logger)

	mux.Get("/", handler.Root)
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))

	mux.Get("/queries", queries.List)
	mux.Get("/queries/{id}", queries.Get)
	mux.Get("/search", queries.Search)
	mux.Put("/update-query/{id}", queries.Update)
	mux.Delete("/my-queries/{id}", queries.Delete)

	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)
		protected.Post("/queries", queries.Create)
		protected.Post("/my-queries", queries.ListOwn)
	})

	mux.Get("/recommendations/{id}", recommendations.ListForQuery)
	mux.Post("/recommendations", recommendations.Create)
	mux.Delete("/recommendations/{id}", recommendations.Delete)
	mux.Get("/recommended-by-me/{email}", recommendations.ListByRecommender)
	mux.Get("/recommended-for-me/{email}", recommendations.ListForUser)

	mux.Post("/jwt", auth.IssueToken)
	mux.Post("/deleteCookieOnLogOut", auth.Logout)

	return mux
}
