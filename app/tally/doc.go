// Package tally is the HTTP service: a liveness probe and a /data endpoint
// that records a timestamp in MongoDB and reports the collection size.
//
// The service starts listening immediately. The MongoDB connection is
// established in the background with a bounded attempt budget; until it is
// published, /data answers 500 {"error":"DB not connected"}. If every attempt
// fails, Run returns an error wrapping bootstrap.ErrAttemptsExhausted and the
// process is expected to exit with a non-zero status.
package tally
