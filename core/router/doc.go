// Package router provides a small generic HTTP router for JSON services.
//
// Routes are registered per method on static paths. Handlers receive a typed
// request context and return a handler.Response which the router renders;
// rendering errors, unknown paths, wrong methods and recovered panics all go
// through a single error handler.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//		router.WithMiddleware(middleware.RequestID[*router.Context]()),
//	)
//	r.Get("/health", health.Liveness[*router.Context])
//	http.ListenAndServe(":5050", r)
//
// Custom context types are supported through WithContextFactory.
package router
