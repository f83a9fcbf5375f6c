package mongo

import "errors"

// Domain-specific MongoDB errors. Use errors.Is() to check error types.
var (
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrInvalidConnectionURL   = errors.New("invalid mongo connection URL")
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
)
