package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/quoter/internal/config"
	"github.com/davidbz/quoter/internal/http/middleware"
	"github.com/davidbz/quoter/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server. The underlying http.Server is built
// here so Shutdown may run before or during Start.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	s := &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
	}
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
	return s
}

// Routes returns the route table wrapped in the middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/platform-fee", s.handler.HandlePlatformFee)
	mux.HandleFunc("/v1/rates", s.handler.HandleRates)
	mux.HandleFunc("/v1/quotes", s.handler.HandleQuote)
	mux.HandleFunc("/v1/quotes/validate", s.handler.HandleValidate)
	mux.HandleFunc("/v1/bundles", s.handler.HandleBundle)
	mux.HandleFunc("/v1/rate-card", s.handler.HandleRateCard)
	mux.HandleFunc("/v1/analytics/summary", s.handler.HandleAnalytics)
	mux.HandleFunc("/metrics", s.handler.HandleMetrics)
	mux.HandleFunc("/health", s.handler.HandleHealth)

	if s.middlewares == nil {
		return mux
	}
	return s.middlewares(mux)
}

// Start serves until Shutdown. It returns nil once the server is closed,
// including when Shutdown ran first.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
