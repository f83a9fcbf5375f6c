package mongo

import "time"

// DefaultDatabase is used when neither Config.Database nor the connection URL names one.
const DefaultDatabase = "test"

// Config holds MongoDB connection settings.
type Config struct {
	ConnectionURL   string        `env:"MONGO_URL"`
	Database        string        `env:"MONGO_DATABASE"`
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGO_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGO_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGO_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"MONGO_RETRY_READS" envDefault:"true"`

	// Bootstrap budget used by the application when dialing in the background.
	ConnectAttempts int           `env:"MONGO_CONNECT_ATTEMPTS" envDefault:"5"`
	ConnectInterval time.Duration `env:"MONGO_CONNECT_INTERVAL" envDefault:"3s"`
}
