package router

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/tally/core/handler"
)

// routeError is a router error carrying its HTTP status.
type routeError struct {
	status int
	msg    string
}

func (e *routeError) Error() string   { return e.msg }
func (e *routeError) StatusCode() int { return e.status }

var (
	ErrNotFound         error = &routeError{status: http.StatusNotFound, msg: "not found"}
	ErrMethodNotAllowed error = &routeError{status: http.StatusMethodNotAllowed, msg: "method not allowed"}
	ErrNilResponse      error = &routeError{status: http.StatusInternalServerError, msg: "nil response"}
	ErrInvalidMethod    error = &routeError{status: http.StatusInternalServerError, msg: "invalid http method"}
	ErrInvalidPattern   error = &routeError{status: http.StatusInternalServerError, msg: "invalid route path pattern"}
	ErrDuplicateRoute   error = &routeError{status: http.StatusInternalServerError, msg: "duplicate route"}
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error as plain text.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError allows error handlers to detect recovered panics.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
