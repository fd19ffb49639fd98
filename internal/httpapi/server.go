// Package httpapi provides the HTTP API over in-memory scorecard sessions.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/validation"
	"go.uber.org/zap"
)

// shutdownTimeout bounds graceful shutdown of Run.
const shutdownTimeout = 10 * time.Second

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg      *contract.Config
	registry *Registry
	validate *validation.Validator
	router   *chi.Mux
	logger   *zap.Logger
	now      func() time.Time
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *contract.Config, base core.CatalogSet, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		registry: NewRegistry(base, cfg.Categories),
		validate: validation.New(),
		router:   chi.NewRouter(),
		logger:   logger,
		now:      time.Now,
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
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealthCheck)
		r.Get("/catalog", s.handleGetCatalog)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Put("/campaign", s.handleSetCampaign)
				r.Put("/scores", s.handleSetScore)
				r.Delete("/scores", s.handleClearScore)
				r.Put("/comments", s.handleSetComment)
				r.Get("/summary", s.handleGetSummary)
				r.Get("/insights", s.handleGetInsights)
				r.Get("/report", s.handleGetReport)
				r.Get("/export", s.handleGetExport)
				r.Get("/document", s.handleGetDocument)
				r.Post("/reset", s.handleResetSession)
			})
		})
	})
}

// requestLogger logs one line per request with zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// Run serves the API on the configured address until ctx is cancelled.
func Run(ctx context.Context, cfg *contract.Config, logger *zap.Logger) error {
	base, err := core.LoadCatalogs(cfg.CatalogFile)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           NewServer(cfg, base, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
