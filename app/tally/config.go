package tally

import (
	"github.com/dmitrymomot/tally/core/server"
	"github.com/dmitrymomot/tally/integration/database/mongo"
)

// Config is the full service configuration loaded from the environment.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"tally"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Mongo  mongo.Config
	Server server.Config
}
