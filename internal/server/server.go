// Package server wires the gateway's HTTP surface: the GraphQL
// endpoint, the transparent per-service proxy routes, health, and
// metrics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/marketgw/internal/config"
	"github.com/vyrodovalexey/marketgw/internal/graph"
	"github.com/vyrodovalexey/marketgw/internal/health"
	"github.com/vyrodovalexey/marketgw/internal/proxy"
	"github.com/vyrodovalexey/marketgw/internal/server/middleware"
)

// ginModeOnce ensures gin.SetMode is only called once to avoid race conditions.
var ginModeOnce sync.Once

// Dependencies holds everything the server needs; all fields are
// required except Checker, which defaults to a fresh one.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Forwarder *proxy.Forwarder
	Schema    graphql.Schema
	Checker   *health.Checker
}

// Server is the gateway HTTP server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	checker    *health.Checker
}

// New creates the server and registers all routes.
func New(deps Dependencies) *Server {
	ginModeOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
	})

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	checker := deps.Checker
	if checker == nil {
		checker = health.NewChecker()
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.AllowOrigins(deps.Config.CORSAllowOrigins...),
		middleware.Metrics(),
	)

	s := &Server{
		engine:  engine,
		logger:  logger,
		checker: checker,
		httpServer: &http.Server{
			Addr:           fmt.Sprintf(":%d", deps.Config.Port),
			Handler:        engine,
			ReadTimeout:    30 * time.Second,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
	}

	s.registerRoutes(deps)
	return s
}

func (s *Server) registerRoutes(deps Dependencies) {
	s.engine.GET("/health", s.checker.LiveHandler)
	s.engine.GET("/ready", s.checker.ReadyHandler)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	graphqlHandler := graph.Handler(deps.Schema)
	s.engine.POST("/graphql", graphqlHandler)
	s.engine.GET("/graphql", graphqlHandler)

	// One transparent route family per backend. The prefix segment
	// names the service; the remainder is forwarded untouched.
	services := deps.Config.Services
	for prefix, target := range map[string]struct {
		name string
		base string
	}{
		"/orders":        {"order", services.Order},
		"/payments":      {"payment", services.Payment},
		"/partners":      {"partner", services.Partner},
		"/offers":        {"offer", services.Offer},
		"/users":         {"user", services.User},
		"/notifications": {"notification", services.Notification},
		"/reviews":       {"review", services.Review},
		"/auth":          {"auth", services.Auth},
	} {
		name, base := target.name, target.base
		s.engine.Any(prefix+"/*path", func(c *gin.Context) {
			deps.Forwarder.Forward(c.Writer, c.Request, name, base, c.Param("path"))
		})
	}
}

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the listener closes. It returns http.ErrServerClosed
// after a graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests. Readiness flips off first so load
// balancers stop sending new work while the drain runs.
func (s *Server) Shutdown(ctx context.Context) error {
	s.checker.SetReady(false)
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
