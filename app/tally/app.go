package tally

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/tally/core/bootstrap"
	"github.com/dmitrymomot/tally/core/health"
	"github.com/dmitrymomot/tally/core/logger"
	"github.com/dmitrymomot/tally/core/response"
	"github.com/dmitrymomot/tally/core/router"
	"github.com/dmitrymomot/tally/core/server"
	"github.com/dmitrymomot/tally/integration/database/mongo"
	"github.com/dmitrymomot/tally/middleware"
	"github.com/dmitrymomot/tally/pkg/handle"
)

const closeTimeout = 5 * time.Second

// App wires the router, HTTP server and background connection bootstrap.
type App struct {
	config Config
	logger *slog.Logger
	router router.Router[*router.Context]
	server *server.Server
	store  *handle.Handle[RecordStore]
	dial   bootstrap.Dialer[RecordStore]
	now    func() time.Time
}

type AppOption func(*App) error

// NewApp builds the service. Nothing is dialed until Run.
func NewApp(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:  handle.New[RecordStore](),
		dial:   MongoDialer(cfg.Mongo),
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.router = app.routes()

	return app, nil
}

func (a *App) routes() router.Router[*router.Context] {
	r := router.New[*router.Context](
		router.WithLogger[*router.Context](a.logger),
		router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]),
		router.WithMiddleware(
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](a.logger),
		),
	)

	r.Method("/health", health.Liveness[*router.Context], http.MethodGet, http.MethodHead)
	r.Get("/data", dataHandler(a.store, a.now, a.logger))

	return r
}

// Handler returns the HTTP handler serving all routes.
func (a *App) Handler() http.Handler {
	return a.router
}

// Store returns the handle the bootstrap publishes the record store into.
func (a *App) Store() *handle.Handle[RecordStore] {
	return a.store
}

// Run serves HTTP and connects to the database concurrently. It returns nil
// after ctx is cancelled, or an error wrapping bootstrap.ErrAttemptsExhausted
// when the database never became reachable.
func (a *App) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	boot := bootstrap.New(a.dial, a.store,
		bootstrap.WithAttempts(a.config.Mongo.ConnectAttempts),
		bootstrap.WithInterval(a.config.Mongo.ConnectInterval),
		bootstrap.WithLogger(a.logger),
	)
	connected := boot.Start(ctx)

	eg.Go(a.server.Run(ctx, a.router))
	eg.Go(func() error {
		_, err := connected.Await()
		if errors.Is(err, bootstrap.ErrAttemptsExhausted) {
			return err
		}
		return nil
	})

	err := eg.Wait()
	a.close()
	return err
}

func (a *App) close() {
	store, ok := a.store.Get()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := store.Close(ctx); err != nil {
		a.logger.Error("failed to close record store", logger.Component("app"), logger.Error(err))
	}
}

// MongoDialer returns a dialer making one verified MongoDB connection attempt.
func MongoDialer(cfg mongo.Config) bootstrap.Dialer[RecordStore] {
	return func(ctx context.Context) (RecordStore, error) {
		db, err := mongo.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewMongoRecordStore(db), nil
	}
}

// NewLogger builds the service logger for cfg.Env and cfg.LogLevel.
func NewLogger(cfg Config, opts ...logger.Option) *slog.Logger {
	preset := logger.WithDevelopment(cfg.AppName)
	if cfg.Env == "production" {
		preset = logger.WithProduction(cfg.AppName)
	}

	base := []logger.Option{
		preset,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	}
	return logger.New(append(base, opts...)...)
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithServer replaces the server built from Config.Server.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		app.server = s
		return nil
	}
}

// WithDialer replaces the MongoDB dialer.
func WithDialer(d bootstrap.Dialer[RecordStore]) AppOption {
	return func(app *App) error {
		if d == nil {
			return errors.New("dialer cannot be nil")
		}
		app.dial = d
		return nil
	}
}

// WithClock replaces the timestamp source used for new records.
func WithClock(now func() time.Time) AppOption {
	return func(app *App) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		app.now = now
		return nil
	}
}
