package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/tally/integration/database/mongo"
)

func TestConfigDefaults(t *testing.T) {
	var cfg mongo.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.EqualValues(t, 100, cfg.MaxPoolSize)
	assert.EqualValues(t, 1, cfg.MinPoolSize)
	assert.Equal(t, 300*time.Second, cfg.MaxConnIdleTime)
	assert.True(t, cfg.RetryWrites)
	assert.True(t, cfg.RetryReads)
	assert.Equal(t, 5, cfg.ConnectAttempts)
	assert.Equal(t, 3*time.Second, cfg.ConnectInterval)
}

func TestDatabaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  mongo.Config
		want string
	}{
		{"explicit database wins", mongo.Config{ConnectionURL: "mongodb://localhost:27017/fromurl", Database: "explicit"}, "explicit"},
		{"database from url", mongo.Config{ConnectionURL: "mongodb://localhost:27017/fromurl"}, "fromurl"},
		{"default database", mongo.Config{ConnectionURL: "mongodb://localhost:27017"}, mongo.DefaultDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := mongo.DatabaseName(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseNameErrors(t *testing.T) {
	t.Parallel()

	_, err := mongo.DatabaseName(mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)

	_, err = mongo.DatabaseName(mongo.Config{ConnectionURL: "postgres://nope"})
	assert.ErrorIs(t, err, mongo.ErrInvalidConnectionURL)
}

func TestConnectEmptyURL(t *testing.T) {
	t.Parallel()

	client, err := mongo.Connect(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
	assert.Nil(t, client)
}

func TestConnectInvalidURL(t *testing.T) {
	t.Parallel()

	client, err := mongo.Connect(context.Background(), mongo.Config{ConnectionURL: "not-a-mongo-url"})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	assert.Nil(t, client)
}

func TestConnectUnreachable(t *testing.T) {
	t.Parallel()

	client, err := mongo.Connect(context.Background(), mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:1/?directConnection=true",
		ConnectTimeout: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
	assert.Nil(t, client)
}

// TestOpenLive runs against a real server when MONGO_URL is set.
func TestOpenLive(t *testing.T) {
	url := os.Getenv("MONGO_URL")
	if url == "" {
		t.Skip("MONGO_URL not set")
	}

	ctx := context.Background()
	db, err := mongo.Open(ctx, mongo.Config{
		ConnectionURL:  url,
		Database:       "tally_client_test",
		ConnectTimeout: 5 * time.Second,
		MaxPoolSize:    5,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = db.Client().Disconnect(context.Background())
	})

	require.NoError(t, mongo.Healthcheck(db.Client())(ctx))

	_, err = db.Collection("test").InsertOne(ctx, bson.M{"time": time.Now()})
	require.NoError(t, err)

	n, err := db.Collection("test").CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
