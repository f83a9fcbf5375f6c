// Package mongo wraps the official MongoDB Go driver with environment based
// configuration and a verified single connection attempt.
//
// Connect builds a client from Config and pings the primary before returning,
// so a returned client is known to be usable. It makes exactly one attempt;
// retry policy belongs to the caller (see core/bootstrap):
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	_, err = db.Collection("test").InsertOne(ctx, bson.M{"time": time.Now()})
//
// # Configuration
//
//	MONGO_URL                 (no default; an empty value fails every attempt)
//	MONGO_DATABASE            (default: database from MONGO_URL, else "test")
//	MONGO_CONNECT_TIMEOUT     (default: 10s, also bounds server selection and ping)
//	MONGO_MAX_POOL_SIZE       (default: 100)
//	MONGO_MIN_POOL_SIZE       (default: 1)
//	MONGO_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGO_RETRY_WRITES        (default: true)
//	MONGO_RETRY_READS         (default: true)
//	MONGO_CONNECT_ATTEMPTS    (default: 5)
//	MONGO_CONNECT_INTERVAL    (default: 3s)
//
// # Errors
//
//	ErrEmptyConnectionURL     - MONGO_URL is empty
//	ErrInvalidConnectionURL   - MONGO_URL cannot be parsed
//	ErrFailedToConnectToMongo - client creation or ping failed
//	ErrHealthcheckFailed      - Healthcheck ping failed
package mongo
