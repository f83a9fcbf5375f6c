// Package health provides the liveness handler.
//
//	r.Get("/health", health.Liveness[*router.Context])
//
// Liveness reports that the process is serving requests. It never consults
// dependencies, so it answers even while the database is still unavailable.
package health
