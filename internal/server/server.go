// Package server exposes the translator as a JSON HTTP API.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/san-english-go/internal/config"
)

// Server wraps the fiber app with the settings its handlers need.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Server with all routes registered.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "san-english",
			DisableStartupMessage: true,
		}),
		cfg:    cfg,
		logger: logger,
	}

	s.app.Use(recover.New())
	s.app.Use(RequestID())
	s.app.Use(AccessLog(logger))

	s.app.Get("/healthz", s.health)

	api := s.app.Group("/api")
	api.Post("/translate", s.translateMove)
	api.Post("/game", s.translateGame)

	return s
}

// App returns the underlying fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
