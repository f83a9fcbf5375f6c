// Package middleware provides request ID and request logging middleware for
// the generic router.
//
//	r := router.New[*router.Context](
//		router.WithMiddleware(
//			middleware.RequestID[*router.Context](),
//			middleware.LoggingWithLogger[*router.Context](log),
//		),
//	)
//
// RequestID must run before Logging so the ID is available to log records.
// RequestIDExtractor plugs the same ID into any logger built with
// logger.WithContextExtractors.
package middleware
