package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/tally/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError converts any error to an HTTPError
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = HTTPError{Status: status, Message: http.StatusText(status)}
		if baseErr.Message == "" {
			baseErr = ErrInternalServerError
		}
	}

	// Internal causes stay out of 5xx bodies.
	if baseErr.Status >= http.StatusInternalServerError {
		return baseErr
	}
	return baseErr.WithError(err)
}

// JSONErrorHandler returns errors as JSON responses.
// It checks for HTTPError first, then the statusCode interface, and defaults to 500.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
