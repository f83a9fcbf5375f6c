package tally

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/tally/core/handler"
	"github.com/dmitrymomot/tally/core/logger"
	"github.com/dmitrymomot/tally/core/response"
	"github.com/dmitrymomot/tally/core/router"
)

// StoreProvider exposes the record store once it has been published.
type StoreProvider interface {
	Get() (RecordStore, bool)
}

var (
	errNotConnected = response.ErrInternalServerError.WithMessage("DB not connected")
	errInsert       = response.ErrInternalServerError.WithMessage("Failed to insert data")
	errCount        = response.ErrInternalServerError.WithMessage("Failed to count data")
)

type dataResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// dataHandler inserts one timestamp record and returns the collection size.
// It never waits for the connection: an unpublished store is an immediate 500.
func dataHandler(store StoreProvider, now func() time.Time, log *slog.Logger) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context) handler.Response {
		records, ok := store.Get()
		if !ok {
			return response.Error(errNotConnected)
		}

		if err := records.Insert(ctx, Record{Time: now()}); err != nil {
			log.ErrorContext(ctx, "insert failed", logger.Component("data"), logger.Error(err))
			return response.Error(errInsert)
		}

		count, err := records.Count(ctx)
		if err != nil {
			log.ErrorContext(ctx, "count failed", logger.Component("data"), logger.Error(err))
			return response.Error(errCount)
		}

		log.DebugContext(ctx, "record inserted", logger.Component("data"), logger.Count("count", count))

		return response.JSON(dataResponse{Message: "Data inserted", Count: count})
	}
}
