// Package iohttp is the HTTP shell of PokeDB. It exposes pokedex.Store
// as a JSON API under /api, together with /health and /metrics.
package iohttp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Server runs the fiber application.
type Server struct {
	cfg *config.ServerConfig
	app *fiber.App
}

// New creates a Server with all routes registered.
func New(cfg *config.ServerConfig, store pokedex.Store) *Server {
	return &Server{cfg: cfg, app: NewFiberApp(cfg, store)}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// Run listens until ctx is cancelled, then shuts down, letting
// in-flight requests finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "addr", s.Addr())
		errCh <- s.app.Listen(s.Addr())
	}()

	select {
	case err := <-errCh:
		return StartError(s.Addr(), err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	if err := <-errCh; err != nil {
		slog.Warn("Listener stopped with error", "error", err)
	}
	return nil
}

// NewFiberApp creates the application with middleware and routes.
func NewFiberApp(cfg *config.ServerConfig, store pokedex.Store) *fiber.App {
	h := NewHandler(store, cfg.PerPage)

	app := fiber.New(fiber.Config{
		AppName:               "pokedb",
		ErrorHandler:          customErrorHandler,
		ReadTimeout:           time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	// order matters
	app.Use(recover.New())
	app.Use(requestIDMiddleware)
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} " +
				"${path} ${latency}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	app.Use(metrics)

	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/pokemons", h.List)
	api.Post("/pokemons", pokemonBody, h.Create)
	api.Get("/pokemons/:id", h.Get)
	api.Put("/pokemons/:id", pokemonBody, h.Update)
	api.Delete("/pokemons/:id", h.Delete)

	return app
}
