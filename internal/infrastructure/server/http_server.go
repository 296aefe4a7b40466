package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer serves the operational endpoints: /health and /metrics
type HTTPServer struct {
	logger   *zap.Logger
	router   *gin.Engine
	server   *http.Server
	db       Pinger
	gatherer prometheus.Gatherer
}

// HTTPServerOptions contains options for creating an HTTPServer
type HTTPServerOptions struct {
	Logger   *zap.Logger
	DB       Pinger
	Gatherer prometheus.Gatherer
}

// NewHTTPServer creates the ops HTTP server
func NewHTTPServer(opts HTTPServerOptions) (*HTTPServer, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if opts.Gatherer == nil {
		return nil, fmt.Errorf("metrics gatherer is required")
	}

	gin.SetMode(gin.ReleaseMode)

	s := &HTTPServer{
		logger:   opts.Logger.Named("http"),
		router:   gin.New(),
		db:       opts.DB,
		gatherer: opts.Gatherer,
	}

	s.router.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	s.router.Use(ginzap.RecoveryWithZap(s.logger, true))

	s.router.GET("/health", s.healthHandler)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *HTTPServer) healthHandler(c *gin.Context) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := s.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": HealthStatusDown,
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": HealthStatusUp})
}

// Handler returns the HTTP handler, for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Start serves on listener until the server is stopped
func (s *HTTPServer) Start(listener net.Listener) error {
	s.logger.Info("Starting HTTP server", zap.String("address", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the HTTP server down
func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}
