package health

import (
	"github.com/dmitrymomot/tally/core/handler"
	"github.com/dmitrymomot/tally/core/response"
)

// Status is the liveness payload.
type Status struct {
	Status string `json:"status"`
}

// Liveness always returns {"status":"ok"} with 200 OK.
func Liveness[C handler.Context](C) handler.Response {
	return response.JSON(Status{Status: "ok"})
}
