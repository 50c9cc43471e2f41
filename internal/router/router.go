// Package router wires handlers and middleware into the HTTP route table.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/greeter/greeter/internal/handler"
	"github.com/greeter/greeter/internal/metrics"
	"github.com/greeter/greeter/internal/middleware"
)

// Options carries the cross-cutting dependencies of the route table.
type Options struct {
	Logger       *slog.Logger
	Recorder     metrics.Recorder
	IsProduction bool
	// PrintPanics also dumps recovered panic stacks to stderr.
	PrintPanics bool
}

// New configures the chi router with all routes and middleware.
//
// Only GET / and GET /api/users are served. Every other path, and any other
// method on those two paths, falls through to the 404 handler.
func New(h *handler.Handler, opts Options) *chi.Mux {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NewNoop()
	}

	r := chi.NewRouter()

	// Global middleware. Logger runs ahead of RealIP so it records the
	// TCP peer rather than forwarded-for headers.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Instrument(opts.Recorder))
	r.Use(middleware.Security(middleware.SecurityConfig{IsProduction: opts.IsProduction}))
	r.Use(middleware.Recoverer(opts.Logger, opts.PrintPanics))

	r.Get("/", h.Root)
	r.Get("/api/users", h.Users)

	notFound := http.HandlerFunc(h.NotFound)
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
