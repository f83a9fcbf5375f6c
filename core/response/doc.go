// Package response builds handler.Response values for JSON APIs and renders
// errors as structured JSON.
//
// Handlers return success payloads with JSON or JSONWithStatus and failures
// with Error:
//
//	func show(ctx *router.Context) handler.Response {
//		item, err := repo.Find(ctx)
//		if err != nil {
//			return response.Error(response.ErrInternalServerError.WithMessage("Failed to load item").WithError(err))
//		}
//		return response.JSON(item)
//	}
//
// Errors reach the router's error handler. JSONErrorHandler renders them as
//
//	{"error": "<message>", "details": {...}}
//
// using the status of an HTTPError, the StatusCode() of any error that
// implements it, or 500 otherwise.
package response
