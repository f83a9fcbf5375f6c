// Package bootstrap establishes a connection to an external dependency in the
// background with a bounded number of attempts, and publishes the result to a
// typed handle that request handlers read without blocking.
//
//	store := handle.New[*mongo.Database]()
//	b := bootstrap.New(dialMongo, store,
//		bootstrap.WithAttempts(5),
//		bootstrap.WithInterval(3*time.Second),
//		bootstrap.WithLogger(log),
//	)
//
//	future := b.Start(ctx) // returns immediately
//
//	// handlers: db, ok := store.Get()
//
//	if _, err := future.Await(); errors.Is(err, bootstrap.ErrAttemptsExhausted) {
//		os.Exit(1)
//	}
//
// The attempt budget counts dial calls, not retries: with a budget of 5 the
// dialer runs at most five times with four waits in between. The budget is
// never refilled within one Connect call.
package bootstrap
