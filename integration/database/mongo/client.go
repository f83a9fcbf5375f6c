package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// Connect makes one attempt to create a client and ping the primary.
// The client is disconnected again if the ping fails.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)
	if cfg.ConnectTimeout > 0 {
		opts = opts.
			SetConnectTimeout(cfg.ConnectTimeout).
			SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := Healthcheck(client)(pingCtx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	return client, nil
}

// Open connects and returns the configured database.
func Open(ctx context.Context, cfg Config) (*mongo.Database, error) {
	name, err := DatabaseName(cfg)
	if err != nil {
		return nil, err
	}

	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return client.Database(name), nil
}

// DatabaseName resolves the database to use: Config.Database, then the
// database named in the connection URL, then DefaultDatabase.
func DatabaseName(cfg Config) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	if cfg.ConnectionURL == "" {
		return "", ErrEmptyConnectionURL
	}

	cs, err := connstring.ParseAndValidate(cfg.ConnectionURL)
	if err != nil {
		return "", errors.Join(ErrInvalidConnectionURL, err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}

	return DefaultDatabase, nil
}

// Healthcheck returns a function that pings the primary through client.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
