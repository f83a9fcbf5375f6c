// Package server wraps http.Server with graceful shutdown and environment
// driven configuration.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, router))
//	return eg.Wait()
//
// Run returns a func() error suitable for errgroup: it serves until the
// context is cancelled, then shuts down within the configured timeout.
//
// Environment variables:
//
//	SERVER_ADDR              (default: :5050)
//	SERVER_READ_TIMEOUT      (default: 15s)
//	SERVER_WRITE_TIMEOUT     (default: 15s)
//	SERVER_IDLE_TIMEOUT      (default: 60s)
//	SERVER_SHUTDOWN_TIMEOUT  (default: 30s)
//	SERVER_MAX_HEADER_BYTES  (default: 1048576)
package server
