package bootstrap

import "errors"

// ErrAttemptsExhausted is returned when every attempt in the budget failed.
// The last dial error is joined to it.
var ErrAttemptsExhausted = errors.New("bootstrap: connection attempts exhausted")
