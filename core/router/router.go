package router

import (
	"net/http"

	"github.com/dmitrymomot/tally/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])

	// Method registers a handler for one or more specific HTTP methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware. All middleware must be added before routes.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection capabilities for debugging.
type Routes interface {
	Routes() []Route
}

// Route describes a single route with its HTTP method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// New creates a new router with the given options.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
