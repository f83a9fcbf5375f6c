// Package logger builds *slog.Logger instances with environment presets and
// provides nil-safe attribute helpers.
//
//	log := logger.New(
//		logger.WithDevelopment("tally"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("server starting", logger.Component("server"))
//
// Presets:
//
//	WithDevelopment: text format, debug level, stdout
//	WithProduction:  JSON format, info level, stdout
//
// Context extractors pull request-scoped values into every record logged with
// a *Context method:
//
//	log := logger.New(logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//		id, ok := ctx.Value(requestIDKey{}).(string)
//		return slog.String("request_id", id), ok
//	}))
//	log.InfoContext(ctx, "handled")
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops, so callers never need nil checks:
//
//	log.Error("insert failed", logger.Error(err))
package logger
