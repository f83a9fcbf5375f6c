// Package async runs functions in the background and hands their typed
// result back through a one-shot Future.
//
//	f := async.Go(ctx, func(ctx context.Context) (*mongo.Client, error) {
//		return mongo.New(ctx, cfg)
//	})
//
//	// later, without blocking:
//	if f.IsComplete() { ... }
//
//	// or block until done:
//	client, err := f.Await()
//
// Done exposes the completion channel so a Future can take part in a select
// next to other events.
package async
