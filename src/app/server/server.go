// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"photoboard/src/app/http/dto"
	"photoboard/src/app/http/handler"
	"photoboard/src/app/http/response"
	"photoboard/src/app/middleware"
	"photoboard/src/core/ports"
	"photoboard/src/core/usecase"
	"photoboard/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	tokens ports.TokenService

	// Handlers
	healthHandler *handler.HealthHandler
	usersHandler  *handler.UsersHandler
	cardsHandler  *handler.CardsHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.BoardRepository, tokens ports.TokenService) (*Server, error) {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	userService := usecase.NewUserService(repo, log)
	cardService := usecase.NewCardService(repo, log)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		tokens:        tokens,
		healthHandler: handler.NewHealthHandler(healthService),
		usersHandler:  handler.NewUsersHandler(userService, tokens),
		cardsHandler:  handler.NewCardsHandler(cardService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Public endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.POST("/sign-up", s.usersHandler.SignUp)
	s.router.POST("/sign-in", s.usersHandler.SignIn)

	// Everything below requires a valid session token
	auth := middleware.Auth(s.tokens)

	users := s.router.Group("/users", auth)
	{
		users.GET("", s.usersHandler.List)
		users.GET("/me", s.usersHandler.Me)
		users.GET("/:id", s.usersHandler.Get)
		users.PATCH("/me", s.usersHandler.UpdateProfile)
		users.PATCH("/me/avatar", s.usersHandler.UpdateAvatar)
	}

	cards := s.router.Group("/cards", auth)
	{
		cards.GET("", s.cardsHandler.List)
		cards.POST("", s.cardsHandler.Create)
		cards.DELETE("/:id", s.cardsHandler.Delete)
		cards.PUT("/:id/likes", s.cardsHandler.Like)
		cards.DELETE("/:id/likes", s.cardsHandler.Unlike)
	}

	// Unmatched routes
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "the requested resource was not found")
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
