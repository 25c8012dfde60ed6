// Package server exposes the calculations over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rgehrsitz/takehome/internal/calculation"
	"github.com/rgehrsitz/takehome/internal/domain"
)

const shutdownTimeout = 10 * time.Second

// Config wires a Server
type Config struct {
	Tables *domain.TaxTables
	// AsOfYear pins the fiscal year; zero follows the calendar.
	AsOfYear int
	Logger   *slog.Logger
	// Registry collects the server's metrics; nil creates a private one.
	Registry *prometheus.Registry
}

// Server serves the calculation API
type Server struct {
	engine  *calculation.CalculationEngine
	asOf    int
	logger  *slog.Logger
	metrics *Metrics
	router  *gin.Engine
}

// New builds the router and its middleware chain
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	engine := calculation.NewCalculationEngine(cfg.Tables)
	engine.SetLogger(calculation.NewSlogLogger(logger))

	s := &Server{
		engine:  engine,
		asOf:    cfg.AsOfYear,
		logger:  logger,
		metrics: NewMetrics(registry),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(s.metrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.POST("/tax", s.ComputeTax)
	v1.POST("/income", s.EvaluateIncome)
	v1.POST("/cashflow", s.CashFlow)
	v1.GET("/tables", s.ListTables)

	s.router = r
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}
