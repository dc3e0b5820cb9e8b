// Package server provides the HTTP boundary layer: request validation, JSON
// serialization, and best-effort generative augmentation over the
// deterministic analysis pipeline.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/raphaelgruber/beingbuddy-go/internal/buddy"
	"github.com/raphaelgruber/beingbuddy-go/internal/llm"
	"github.com/raphaelgruber/beingbuddy-go/internal/metrics"
)

// Version is the reported service version.
const Version = "1.0.0"

const serviceName = "Being Buddy Service"

// Options configures the HTTP server.
type Options struct {
	ListenAddr string
	EnableCORS bool
	Debug      bool
}

// Server hosts the HTTP API.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	service    *buddy.Service
	augmenter  llm.Augmenter // nil means fallback-only operation
	collector  *metrics.Collector
	logger     *slog.Logger
}

// New creates the HTTP server and registers all routes. The augmenter may be
// nil; every endpoint then serves the deterministic fallback path.
func New(opts Options, service *buddy.Service, augmenter llm.Augmenter, collector *metrics.Collector, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))

	if opts.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		engine:    engine,
		service:   service,
		augmenter: augmenter,
		collector: collector,
		logger:    logger,
	}

	s.routes()

	s.httpServer = &http.Server{
		Addr:         opts.ListenAddr,
		Handler:      engine,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second, // long enough for LLM replies
		IdleTimeout:  120 * time.Second,
	}

	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/stats", s.handleStats)
	s.engine.POST("/chat", s.handleChat)
	s.engine.POST("/analyze_conversation", s.handleAnalyzeConversation)
	s.engine.POST("/mood", s.handleMood)
	s.engine.GET("/entries/:user_id", s.handleEntries)
	s.engine.GET("/mood/:user_id/timeline", s.handleMoodTimeline)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
