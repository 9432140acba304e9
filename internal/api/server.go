// Package api provides the HTTP API server and handlers for the
// MediaLog application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medialogapp/medialog-server/internal/http/response"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	userService     *service.UserService
	categoryService *service.CategoryService
	catalogService  *service.CatalogService
	tagService      *service.TagService
	creatorService  *service.CreatorService
	reviewService   *service.ReviewService
	exportService   *service.ExportService
	validator       *validation.Validator
	router          *chi.Mux
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	userService *service.UserService,
	categoryService *service.CategoryService,
	catalogService *service.CatalogService,
	tagService *service.TagService,
	creatorService *service.CreatorService,
	reviewService *service.ReviewService,
	exportService *service.ExportService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		userService:     userService,
		categoryService: categoryService,
		catalogService:  catalogService,
		tagService:      tagService,
		creatorService:  creatorService,
		reviewService:   reviewService,
		exportService:   exportService,
		validator:       validation.New(),
		router:          chi.NewRouter(),
		logger:          logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Post("/login", s.handleLogin)

	s.router.Route("/users", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)
		r.Get("/", s.handleListUsers)
		r.Get("/{id}", s.handleGetUser)
	})

	s.router.Route("/categories", func(r chi.Router) {
		r.Post("/", s.handleResolveCategory)
		r.Get("/", s.handleListCategories)
	})

	s.router.Route("/items", func(r chi.Router) {
		r.Post("/", s.handleCreateItem)
		r.Get("/", s.handleListItems)
		r.Get("/{id}", s.handleGetItem)
		r.Patch("/{id}", s.handleUpdateItem)
		r.Delete("/{id}", s.handleDeleteItem)
		r.Post("/{id}/tags", s.handleSyncItemTags)
		r.Post("/{id}/creators", s.handleSyncItemCreators)
		r.Get("/{id}/reviews", s.handleListItemReviews)
	})

	s.router.Route("/tags", func(r chi.Router) {
		r.Post("/", s.handleCreateTag)
		r.Get("/", s.handleListTags)
	})

	s.router.Route("/creators", func(r chi.Router) {
		r.Post("/", s.handleCreateCreator)
		r.Get("/", s.handleListCreators)
	})

	s.router.Route("/reviews", func(r chi.Router) {
		r.Post("/", s.handleCreateReview)
		r.Get("/", s.handleListReviews)
	})

	s.router.Route("/export", func(r chi.Router) {
		r.Get("/items", s.handleExportItems)
		r.Post("/items/email", s.handleExportItemsEmail)
	})
}

// handleIndex reports that the API is up.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "Medialog API is running"}, s.logger)
}

// handleHealthCheck returns service health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "healthy"}, s.logger)
}
