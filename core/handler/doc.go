// Package handler provides the types shared by the router, middleware and
// response packages: a request context contract, a deferred response renderer,
// and generic handler, error handler and middleware signatures.
//
// Handlers never write to the response directly. They return a Response that
// the router renders, so errors raised while rendering flow into the router's
// error handler:
//
//	func hello(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"hello": "world"})
//	}
//
// Middleware wraps handlers and may decorate the returned Response:
//
//	func timing[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			return func(w http.ResponseWriter, r *http.Request) error {
//				w.Header().Set("X-Elapsed", time.Since(start).String())
//				return resp(w, r)
//			}
//		}
//	}
package handler
